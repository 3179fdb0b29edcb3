// Package spacing decides how many blank lines go between output blocks.
//
// A rule maps (previous block type, next block type) to a line count.
// Lookups fall back to (none, next) and then to zero, so a missing rule
// never breaks output. Attached block types (a narrative fragment folded
// into the action before it) never become the previous block.
package spacing

import (
	"sync"

	"github.com/dfgame/logstyle/pkg/config"
	"github.com/dfgame/logstyle/pkg/errors"
	"github.com/dfgame/logstyle/pkg/types"
)

// Transition is an ordered pair of block types
type Transition struct {
	Prev types.BlockType
	Next types.BlockType
}

func (t Transition) String() string {
	return t.Prev.String() + " -> " + t.Next.String()
}

// importantTransitions are the ones a usable rule table must define
var importantTransitions = []Transition{
	{types.BlockNone, types.BlockDungeonHeader},
	{types.BlockDungeonHeader, types.BlockRoomHeader},
	{types.BlockRoomHeader, types.BlockRoomInfo},
	{types.BlockRoomInfo, types.BlockEnemyAppearance},
	{types.BlockEnemyAppearance, types.BlockEnemyStats},
	{types.BlockEnemyStats, types.BlockHeroStats},
	{types.BlockHeroStats, types.BlockCombatAction},
	{types.BlockCombatAction, types.BlockCombatAction},
	{types.BlockCombatAction, types.BlockRoomCleared},
	{types.BlockRoomCleared, types.BlockRoomHeader},
}

// Rules is a spacing rule table. It is safe for concurrent use.
type Rules struct {
	mu       sync.RWMutex
	lines    map[Transition]int
	attached map[types.BlockType]bool
}

// NewRules builds a table from configuration. Later rules for the same
// transition replace earlier ones.
func NewRules(cfg config.SpacingConfig) (*Rules, error) {
	r := &Rules{
		lines:    make(map[Transition]int, len(cfg.Rules)),
		attached: make(map[types.BlockType]bool, len(cfg.Attached)),
	}
	for _, rc := range cfg.Rules {
		prev, err := types.ParseBlockType(rc.Prev)
		if err != nil {
			return nil, err
		}
		next, err := types.ParseBlockType(rc.Next)
		if err != nil {
			return nil, err
		}
		if err := r.Set(prev, next, rc.Lines); err != nil {
			return nil, err
		}
	}
	for _, a := range cfg.Attached {
		bt, err := types.ParseBlockType(a)
		if err != nil {
			return nil, err
		}
		r.attached[bt] = true
	}
	return r, nil
}

// DefaultRules returns the compiled-in rule table
func DefaultRules() *Rules {
	r, err := NewRules(config.Builtin().Spacing)
	if err != nil {
		panic("builtin spacing rules are invalid: " + err.Error())
	}
	return r
}

// Set defines the blank lines for a transition
func (r *Rules) Set(prev, next types.BlockType, lines int) error {
	if lines < 0 {
		return errors.Newf(errors.ErrInvalidInput, "spacing for %s -> %s cannot be negative", prev, next)
	}
	if next == types.BlockNone {
		return errors.New(errors.ErrInvalidInput, "spacing rule needs a next block type")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[Transition{prev, next}] = lines
	return nil
}

// SetAttached marks a block type as part of the block before it
func (r *Rules) SetAttached(bt types.BlockType, attached bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if attached {
		r.attached[bt] = true
	} else {
		delete(r.attached, bt)
	}
}

// IsAttached reports whether bt leaves the previous block unchanged
func (r *Rules) IsAttached(bt types.BlockType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.attached[bt]
}

// Lines is the number of blank lines between prev and next
func (r *Rules) Lines(prev, next types.BlockType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n, ok := r.lines[Transition{prev, next}]; ok {
		return n
	}
	if n, ok := r.lines[Transition{types.BlockNone, next}]; ok {
		return n
	}
	return 0
}

// Has reports whether a transition is defined exactly
func (r *Rules) Has(prev, next types.BlockType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lines[Transition{prev, next}]
	return ok
}

// Validate lists the important transitions the table does not define
func (r *Rules) Validate() []Transition {
	var missing []Transition
	for _, t := range importantTransitions {
		if !r.Has(t.Prev, t.Next) {
			missing = append(missing, t)
		}
	}
	return missing
}
