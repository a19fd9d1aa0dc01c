// Package service starts and stops the long-lived parts of a process as one
// unit.
package service

import (
	"context"
	"errors"
	"fmt"
)

// Service is anything the group can manage. Members are started when they
// implement Runnable and stopped when they implement Shutdowner or Closer.
type Service any

type Runnable interface{ Run() }

type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

type Closer interface{ Close() error }

// Group keeps services in the order they were added and stops them in
// reverse.
type Group struct {
	list []Service
}

func (g *Group) Add(services ...Service) { g.list = append(g.list, services...) }

func (g *Group) Len() int { return len(g.list) }

func (g *Group) Start() {
	for _, s := range g.list {
		if v, ok := s.(Runnable); ok {
			v.Run()
		}
	}
}

// Shutdown stops every member even when some fail.
func (g *Group) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(g.list) - 1; i >= 0; i-- {
		var err error
		switch v := g.list[i].(type) {
		case Shutdowner:
			err = v.Shutdown(ctx)
		case Closer:
			err = v.Close()
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, fmt.Errorf("stop %v: %w", name(g.list[i]), err))
		}
	}
	return errors.Join(errs...)
}

func name(s Service) string {
	if v, ok := s.(fmt.Stringer); ok {
		return v.String()
	}
	return fmt.Sprintf("%T", s)
}
