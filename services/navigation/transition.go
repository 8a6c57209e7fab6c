package navigation

import (
	"context"
	"time"
)

// Phase is the stage of a page switch.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExiting
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseExiting:
		return "exiting"
	case PhaseEntering:
		return "entering"
	default:
		return "idle"
	}
}

// Transition wraps each routed page with its exit and enter animations.
// Both calls return only once the animation has completed.
type Transition interface {
	Exit(ctx context.Context, key string) error
	Enter(ctx context.Context, key string) error
}

// TimedTransition completes each animation after a fixed duration.
type TimedTransition struct {
	ExitDuration  time.Duration
	EnterDuration time.Duration
}

func (t TimedTransition) Exit(ctx context.Context, _ string) error {
	return wait(ctx, t.ExitDuration)
}

func (t TimedTransition) Enter(ctx context.Context, _ string) error {
	return wait(ctx, t.EnterDuration)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
