package mask

import (
	"context"
	"time"

	"github.com/dfgame/logstyle/pkg/logging"
)

// Animator advances a mask on a fixed interval from its own goroutine, so
// a writer blocked on pacing never stalls the animation.
type Animator struct {
	mask     *Mask
	interval time.Duration
	onTick   func(offset int64)
}

// NewAnimator creates an animator. onTick, when set, is called after each
// advance with the new offset.
func NewAnimator(m *Mask, interval time.Duration, onTick func(offset int64)) *Animator {
	return &Animator{mask: m, interval: interval, onTick: onTick}
}

// Run advances the mask until ctx is cancelled
func (a *Animator) Run(ctx context.Context) {
	if a.interval <= 0 {
		<-ctx.Done()
		return
	}
	logger := logging.GetLogger("mask")
	logger.Debug().Dur("interval", a.interval).Msg("Mask animation started")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Int64("offset", a.mask.Offset()).Msg("Mask animation stopped")
			return
		case <-ticker.C:
			a.mask.Advance()
			if a.onTick != nil {
				a.onTick(a.mask.Offset())
			}
		}
	}
}

// Start runs the animator in a new goroutine. The returned function stops
// it and waits for the goroutine to exit.
func (a *Animator) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}
