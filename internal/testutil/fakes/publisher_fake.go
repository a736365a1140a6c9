package fakes

import (
	"context"
	"errors"
	"sync"

	platformEvents "github.com/dhima/auto-run-ac/platform/events"
)

// FakePublisher captures published events and can simulate failures.
type FakePublisher struct {
	mu        sync.Mutex
	events    []platformEvents.TriggerEvent
	FailNext  bool
	FailError error
}

func (p *FakePublisher) Publish(_ context.Context, e platformEvents.TriggerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailNext {
		p.FailNext = false
		if p.FailError == nil {
			p.FailError = errors.New("publish failed")
		}
		return p.FailError
	}
	p.events = append(p.events, e)
	return nil
}

// Events returns a copy of everything published so far.
func (p *FakePublisher) Events() []platformEvents.TriggerEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]platformEvents.TriggerEvent(nil), p.events...)
}
