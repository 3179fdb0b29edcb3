package types

import (
	"strings"

	"github.com/dfgame/logstyle/pkg/errors"
)

// BlockType names a kind of output unit. Spacing between blocks is decided
// by the pair (previous, current).
type BlockType string

const (
	// BlockNone is the state before anything was displayed
	BlockNone BlockType = ""

	BlockDungeonHeader         BlockType = "DungeonHeader"
	BlockRoomHeader            BlockType = "RoomHeader"
	BlockRoomInfo              BlockType = "RoomInfo"
	BlockEnemyAppearance       BlockType = "EnemyAppearance"
	BlockEnemyStats            BlockType = "EnemyStats"
	BlockHeroStats             BlockType = "HeroStats"
	BlockCombatAction          BlockType = "CombatAction"
	BlockEnvironmentalAction   BlockType = "EnvironmentalAction"
	BlockStatusEffect          BlockType = "StatusEffect"
	BlockPoisonDamage          BlockType = "PoisonDamage"
	BlockNarrative             BlockType = "Narrative"
	BlockCriticalMissNarrative BlockType = "CriticalMissNarrative"
	BlockRoomCleared           BlockType = "RoomCleared"
	BlockSafeRoom              BlockType = "SafeRoom"
	BlockSystemMessage         BlockType = "SystemMessage"
	BlockStatsBlock            BlockType = "StatsBlock"
	BlockMenuBlock             BlockType = "MenuBlock"
)

// AllBlockTypes lists every block type in display-flow order
var AllBlockTypes = []BlockType{
	BlockDungeonHeader,
	BlockRoomHeader,
	BlockRoomInfo,
	BlockEnemyAppearance,
	BlockEnemyStats,
	BlockHeroStats,
	BlockCombatAction,
	BlockEnvironmentalAction,
	BlockStatusEffect,
	BlockPoisonDamage,
	BlockNarrative,
	BlockCriticalMissNarrative,
	BlockRoomCleared,
	BlockSafeRoom,
	BlockSystemMessage,
	BlockStatsBlock,
	BlockMenuBlock,
}

func (b BlockType) String() string {
	if b == BlockNone {
		return "None"
	}
	return string(b)
}

// Valid reports whether b is BlockNone or a known block type
func (b BlockType) Valid() bool {
	if b == BlockNone {
		return true
	}
	for _, k := range AllBlockTypes {
		if k == b {
			return true
		}
	}
	return false
}

// ParseBlockType resolves a block type name. "none" and the empty string
// map to BlockNone; matching is case-insensitive.
func ParseBlockType(s string) (BlockType, error) {
	if s == "" || strings.EqualFold(s, "none") {
		return BlockNone, nil
	}
	for _, k := range AllBlockTypes {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return BlockNone, errors.Newf(errors.ErrBlockTypeUnknown, "unknown block type %q", s).
		WithDetail("value", s)
}
