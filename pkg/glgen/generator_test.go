package glgen

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/giongto35/gldispatch/pkg/logger"
)

func newTestGenerator(t *testing.T, abi string) (*Generator, Config) {
	t.Helper()
	dir := t.TempDir()
	conf := Config{
		In:     filepath.Join(dir, "api", "gl_API.xml"),
		ABI:    filepath.Join(dir, "api", "abi.txt"),
		Out:    dir,
		Module: module,
	}
	if err := os.MkdirAll(filepath.Dir(conf.In), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(conf.In, []byte(small), 0644); err != nil {
		t.Fatal(err)
	}
	if abi != "" {
		if err := os.WriteFile(conf.ABI, []byte(abi), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return New(conf, logger.NewWriter(io.Discard)), conf
}

func TestGeneratorRun(t *testing.T) {
	g, conf := newTestGenerator(t, "0 Clear\n1 Flush\n")

	changed, err := g.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != len(Outputs) {
		t.Errorf("first run wrote %v", changed)
	}
	for _, out := range Outputs {
		if _, err := os.Stat(filepath.Join(conf.Out, out.Path)); err != nil {
			t.Error(err)
		}
	}

	changed, err = g.Run()
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != 0 {
		t.Errorf("second run rewrote %v", changed)
	}
}

func TestGeneratorRejectsMovedOffsets(t *testing.T) {
	g, conf := newTestGenerator(t, "0 Flush\n")
	if _, err := g.Run(); !errors.Is(err, ErrABI) {
		t.Fatalf("got %v", err)
	}
	if _, err := os.Stat(filepath.Join(conf.Out, "pkg", "glapi", "api_gen.go")); err == nil {
		t.Errorf("nothing may be written when the ABI check fails")
	}
}

func TestGeneratorUpdateABI(t *testing.T) {
	g, conf := newTestGenerator(t, "0 Clear\n")
	g.conf.UpdateABI = true
	if _, err := g.Run(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(conf.ABI)
	if err != nil {
		t.Fatal(err)
	}
	published, err := ReadABI(strings.NewReader(string(b)))
	if err != nil {
		t.Fatal(err)
	}
	if len(published) != 5 || published[4].Name != "CallLists" {
		t.Errorf("got %v", published)
	}
}

func TestGeneratorWatch(t *testing.T) {
	g, conf := newTestGenerator(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()

	target := filepath.Join(conf.Out, "pkg", "glapi", "offsets_gen.go")
	wait := func(cond func(string) bool) bool {
		for deadline := time.Now().Add(5 * time.Second); time.Now().Before(deadline); {
			if b, err := os.ReadFile(target); err == nil && cond(string(b)) {
				return true
			}
			time.Sleep(20 * time.Millisecond)
		}
		return false
	}
	if !wait(func(s string) bool { return strings.Contains(s, "const Count = 5") }) {
		t.Fatalf("initial generation did not happen")
	}

	grown := strings.Replace(small, "</category>\n</registry>",
		`<function name="Finish" offset="5"/></category></registry>`, 1)
	if err := os.WriteFile(conf.In, []byte(grown), 0644); err != nil {
		t.Fatal(err)
	}
	if !wait(func(s string) bool { return strings.Contains(s, "OffsetFinish") }) {
		t.Errorf("registry change was not picked up")
	}

	cancel()
	if err := <-done; err != nil {
		t.Error(err)
	}
}
