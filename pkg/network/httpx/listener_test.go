package httpx

import (
	"net"
	"testing"
)

func TestListenerCreation(t *testing.T) {
	tests := []struct {
		addr   string
		random bool
		error  bool
	}{
		{addr: ":0", random: true},
		{addr: "localhost:0", random: true},
		{addr: "https://garbage.com:99a9a", error: true},
		{addr: "localhost:abc1", error: true},
	}

	for _, test := range tests {
		ls, err := NewListener(test.addr, false)
		if test.error {
			if err == nil {
				t.Errorf("%v: expected error, but got none", test.addr)
				_ = ls.Close()
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error %v", err)
			continue
		}
		if ls.GetPort() <= 0 {
			t.Errorf("expected a random port, got %v", ls.GetPort())
		}
		_ = ls.Close()
	}
}

func TestListenerPortRoll(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = busy.Close() }()
	addr := busy.Addr().String()

	if _, err := NewListener(addr, false); err == nil {
		t.Fatalf("listening on a busy port without roll should fail")
	}

	ls, err := NewListener(addr, true)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = ls.Close() }()
	if ls.GetPort() == busy.Addr().(*net.TCPAddr).Port {
		t.Errorf("port was not rolled")
	}
}
