package cli

import (
	"context"
	"sync"
)

// screens hands out one context per visited screen. Entering a screen
// cancels the context of the previous one, so late fetch results of a
// screen that was left are dropped.
type screens struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

func (s *screens) enter(parent context.Context) context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	return ctx
}

func (s *screens) leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// applyIfActive runs fn only while ctx is still live.
func applyIfActive(ctx context.Context, fn func()) bool {
	if ctx.Err() != nil {
		return false
	}
	fn()
	return true
}
