package os

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileChanged(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a", "b.go")

	tests := []struct {
		data    string
		written bool
	}{
		{data: "package b\n", written: true},
		{data: "package b\n", written: false},
		{data: "package c\n", written: true},
	}
	for _, test := range tests {
		written, err := WriteFileChanged(name, []byte(test.data))
		if err != nil {
			t.Fatal(err)
		}
		if written != test.written {
			t.Errorf("%q: written = %v, want %v", test.data, written, test.written)
		}
	}
	if b, _ := os.ReadFile(name); string(b) != "package c\n" {
		t.Errorf("got %q", b)
	}
	if Exists(name + ".tmp") {
		t.Errorf("temp file left behind")
	}
}

func TestFileLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.lock")
	a, err := NewFileLock(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFileLock(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Lock(); err != nil {
		t.Fatal(err)
	}
	if ok, err := b.TryLock(); err != nil || ok {
		t.Errorf("second lock taken while the first is held: %v %v", ok, err)
	}
	if err := a.Unlock(); err != nil {
		t.Fatal(err)
	}
	if ok, err := b.TryLock(); err != nil || !ok {
		t.Errorf("lock not released: %v %v", ok, err)
	}
	_ = b.Unlock()
}
