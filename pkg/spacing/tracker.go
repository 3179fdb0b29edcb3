package spacing

import (
	"sync"

	"github.com/dfgame/logstyle/pkg/types"
)

// Tracker remembers the last displayed block of one output stream. Each
// writer or session owns its own Tracker.
type Tracker struct {
	mu    sync.Mutex
	rules *Rules
	last  types.BlockType
}

// NewTracker starts a tracker in the "nothing displayed" state
func NewTracker(rules *Rules) *Tracker {
	return &Tracker{rules: rules}
}

// Before returns the blank lines owed before next without changing state
func (t *Tracker) Before(next types.BlockType) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rules.Lines(t.last, next)
}

// Record marks bt as displayed. Attached types are ignored.
func (t *Tracker) Record(bt types.BlockType) {
	if t.rules.IsAttached(bt) {
		return
	}
	t.mu.Lock()
	t.last = bt
	t.mu.Unlock()
}

// Next returns the blank lines owed before bt and records it
func (t *Tracker) Next(bt types.BlockType) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := t.rules.Lines(t.last, bt)
	if !t.rules.IsAttached(bt) {
		t.last = bt
	}
	return lines
}

// Last is the most recent non-attached block, BlockNone after Reset
func (t *Tracker) Last() types.BlockType {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Reset forgets the last block; call it at each encounter or session start
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.last = types.BlockNone
	t.mu.Unlock()
}
