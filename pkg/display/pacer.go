package display

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/types"
)

// Pacer delays output after each block so the log reads at a human pace.
// Skip makes every current and later wait return at once until Resume.
type Pacer struct {
	defaultDelay time.Duration
	delays       map[types.BlockType]time.Duration

	mu      sync.Mutex
	skipped bool
	skipCh  chan struct{}
}

// NewPacer builds a pacer from configuration. Block names match case
// insensitively; when two spellings name the same block the exact block
// type name wins. Unknown names were rejected by config validation and
// are ignored here.
func NewPacer(cfg config.PacingConfig) *Pacer {
	p := &Pacer{
		defaultDelay: time.Duration(cfg.DefaultMS) * time.Millisecond,
		delays:       make(map[types.BlockType]time.Duration, len(cfg.Blocks)),
		skipCh:       make(chan struct{}),
	}
	names := make([]string, 0, len(cfg.Blocks))
	for name := range cfg.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		bt, err := types.ParseBlockType(name)
		if err != nil || bt == types.BlockNone {
			continue
		}
		if _, exact := cfg.Blocks[string(bt)]; exact && name != string(bt) {
			continue
		}
		p.delays[bt] = time.Duration(cfg.Blocks[name]) * time.Millisecond
	}
	return p
}

// Delay is the pause owed after a block of type bt
func (p *Pacer) Delay(bt types.BlockType) time.Duration {
	if d, ok := p.delays[bt]; ok {
		return d
	}
	return p.defaultDelay
}

// Wait sleeps for the block's delay. It returns early with nil when
// skipping, or with the context error when ctx ends.
func (p *Pacer) Wait(ctx context.Context, bt types.BlockType) error {
	d := p.Delay(bt)
	if d <= 0 {
		return nil
	}

	p.mu.Lock()
	skipped, skipCh := p.skipped, p.skipCh
	p.mu.Unlock()
	if skipped {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-skipCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Skip releases any pending wait and disables pacing
func (p *Pacer) Skip() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.skipped {
		return
	}
	p.skipped = true
	close(p.skipCh)
}

// Resume re-enables pacing after Skip
func (p *Pacer) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.skipped {
		return
	}
	p.skipped = false
	p.skipCh = make(chan struct{})
}

// Skipping reports whether waits currently return at once
func (p *Pacer) Skipping() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.skipped
}
