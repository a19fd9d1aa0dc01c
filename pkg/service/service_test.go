package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type (
	runner struct {
		name string
		log  *[]string
		err  error
	}
	closer struct {
		name string
		log  *[]string
	}
)

func (r *runner) Run() { *r.log = append(*r.log, "run "+r.name) }
func (r *runner) Shutdown(context.Context) error {
	*r.log = append(*r.log, "stop "+r.name)
	return r.err
}
func (r *runner) String() string { return r.name }

func (c *closer) Close() error {
	*c.log = append(*c.log, "close "+c.name)
	return nil
}

func TestGroupOrder(t *testing.T) {
	var log []string
	var g Group
	g.Add(&closer{"backend", &log}, &runner{name: "http", log: &log}, "plain")

	g.Start()
	if err := g.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := "run http,stop http,close backend"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if g.Len() != 3 {
		t.Errorf("len %d", g.Len())
	}
}

func TestGroupShutdownErrors(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	var g Group
	g.Add(
		&runner{name: "a", log: &log, err: boom},
		&runner{name: "b", log: &log, err: context.Canceled},
		&closer{"c", &log},
	)

	err := g.Shutdown(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "stop a") {
		t.Errorf("error lacks the failed member: %v", err)
	}
	if len(log) != 3 {
		t.Errorf("not every member stopped: %v", log)
	}
}
