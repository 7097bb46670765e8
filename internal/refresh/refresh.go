// Package refresh repeats render passes on a timer until interrupted.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/internal/render"
)

// State is a step of the refresh loop.
type State int

const (
	Idle State = iota
	Fetching
	Rendering
	Sleeping
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Rendering:
		return "rendering"
	case Sleeping:
		return "sleeping"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrorPolicy decides what a failed pass does to the loop.
type ErrorPolicy int

const (
	// Continue reports the failure and tries again after the delay.
	Continue ErrorPolicy = iota
	// Stop terminates the loop with the failure.
	Stop
)

func (p ErrorPolicy) String() string {
	if p == Stop {
		return "stop"
	}
	return "continue"
}

// ErrInvalidDelay is returned by Run when the delay is not positive.
var ErrInvalidDelay = errors.New("refresh delay must be positive")

// Loop runs a render pass, sleeps for Delay and starts over. Every pass
// collects a fresh quote cache. The loop never writes the portfolio.
type Loop struct {
	Portfolio portfolio.Portfolio
	Provider  quote.Provider
	Formatter *render.Formatter
	Delay     time.Duration
	Policy    ErrorPolicy
	Log       zerolog.Logger

	// OnTable receives every successfully rendered table.
	OnTable func(*render.Table)
	// OnError receives every failed pass that does not end the loop.
	OnError func(error)
	// OnState observes state transitions. Optional.
	OnState func(State)

	state State
}

// State returns the current state of the loop.
func (l *Loop) State() State {
	return l.state
}

func (l *Loop) enter(s State) {
	l.state = s
	if l.OnState != nil {
		l.OnState(s)
	}
}

// Run drives the loop until ctx is cancelled, which returns nil. It
// returns early with an error on a configuration failure, or on any fetch
// failure when Policy is Stop.
func (l *Loop) Run(ctx context.Context) error {
	if l.Delay <= 0 {
		return ErrInvalidDelay
	}
	log := l.Log.With().Str("component", "refresh").Logger()

	l.enter(Idle)
	defer l.enter(Terminated)

	for cycle := 1; ; cycle++ {
		if ctx.Err() != nil {
			return nil
		}

		l.enter(Fetching)
		cache, err := quote.Collect(ctx, l.Portfolio.Items, l.Provider, log)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if quote.IsConfiguration(err) || l.Policy == Stop {
				return err
			}
			log.Warn().Err(err).Int("cycle", cycle).Msg("render pass failed, retrying after delay")
			if l.OnError != nil {
				l.OnError(err)
			}
		} else {
			l.enter(Rendering)
			table := l.Formatter.Build(l.Portfolio, cache)
			if l.OnTable != nil {
				l.OnTable(table)
			}
		}

		l.enter(Sleeping)
		if !sleep(ctx, l.Delay) {
			return nil
		}
	}
}

// sleep waits for d and reports false when ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
