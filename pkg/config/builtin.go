package config

// Builtin returns the compiled-in configuration. It mirrors
// embedded/defaults.toml and is what LoadOrBuiltin falls back to when
// loading fails, so it must never depend on the filesystem.
func Builtin() *Config {
	return &Config{
		Palette: PaletteConfig{
			DefaultForeground: "y",
			DefaultBackground: "K",
			Codes: []CodeConfig{
				{Code: "r", Name: "dark red", Hex: "#a64a2e"},
				{Code: "R", Name: "red", Hex: "#ff3232"},
				{Code: "o", Name: "vibrant orange", Hex: "#ff8c00"},
				{Code: "O", Name: "orange", Hex: "#d04200"},
				{Code: "w", Name: "brown", Hex: "#98875f"},
				{Code: "W", Name: "yellow", Hex: "#ffff00"},
				{Code: "g", Name: "dark green", Hex: "#009403"},
				{Code: "G", Name: "green", Hex: "#00c420"},
				{Code: "b", Name: "dark blue", Hex: "#0048bd"},
				{Code: "B", Name: "blue", Hex: "#0096ff"},
				{Code: "c", Name: "dark cyan", Hex: "#40a4b9"},
				{Code: "C", Name: "cyan", Hex: "#77bfcf"},
				{Code: "m", Name: "dark magenta", Hex: "#b154cf"},
				{Code: "M", Name: "magenta", Hex: "#da5bd6"},
				{Code: "k", Name: "very dark", Hex: "#0f3b3a"},
				{Code: "K", Name: "dark grey", Hex: "#155352"},
				{Code: "y", Name: "light grey", Hex: "#e6e6e6"},
				{Code: "Y", Name: "white", Hex: "#ffffff"},
			},
		},
		Templates: []TemplateConfig{
			{Name: "red", Shader: "solid", Colors: "R"},
			{Name: "green", Shader: "solid", Colors: "G"},
			{Name: "blue", Shader: "solid", Colors: "B"},
			{Name: "yellow", Shader: "solid", Colors: "W"},
			{Name: "white", Shader: "solid", Colors: "Y"},
			{Name: "cyan", Shader: "solid", Colors: "C"},
			{Name: "magenta", Shader: "solid", Colors: "M"},
			{Name: "grey", Shader: "solid", Colors: "y"},
			{Name: "dark red", Shader: "solid", Colors: "r"},
			{Name: "dark green", Shader: "solid", Colors: "g"},
			{Name: "dark blue", Shader: "solid", Colors: "b"},
			{Name: "dark orange", Shader: "solid", Colors: "o"},
			{Name: "orange", Shader: "solid", Colors: "O"},
			{Name: "brown", Shader: "solid", Colors: "w"},
			{Name: "common", Shader: "solid", Colors: "y"},
			{Name: "uncommon", Shader: "solid", Colors: "G"},
			{Name: "rare", Shader: "solid", Colors: "B"},
			{Name: "epic", Shader: "solid", Colors: "M"},
			{Name: "legendary", Shader: "solid", Colors: "O"},
			{Name: "warmwhite", Shader: "solid", Colors: "W"},
			{Name: "neutralwarm", Shader: "solid", Colors: "Y"},
			{Name: "neutralcool", Shader: "solid", Colors: "Y"},
			{Name: "coolwhite", Shader: "solid", Colors: "C"},
			{Name: "miss", Shader: "solid", Colors: "K"},
			{Name: "damage", Shader: "solid", Colors: "R"},
			{Name: "heal", Shader: "solid", Colors: "G"},
			{Name: "mana", Shader: "solid", Colors: "B"},
			{Name: "fiery", Shader: "sequence", Colors: "ROWYWOR"},
			{Name: "icy", Shader: "sequence", Colors: "CBYCbCY"},
			{Name: "toxic", Shader: "sequence", Colors: "gGYGg"},
			{Name: "crystalline", Shader: "sequence", Colors: "mMBYBMm"},
			{Name: "electric", Shader: "sequence", Colors: "CYWYC"},
			{Name: "holy", Shader: "sequence", Colors: "WYWYW"},
			{Name: "demonic", Shader: "sequence", Colors: "rRKrR"},
			{Name: "arcane", Shader: "sequence", Colors: "mMCMm"},
			{Name: "natural", Shader: "sequence", Colors: "gGwGg"},
			{Name: "shadow", Shader: "sequence", Colors: "KkykK"},
			{Name: "golden", Shader: "sequence", Colors: "WOWOW"},
			{Name: "bloodied", Shader: "sequence", Colors: "rRrK"},
			{Name: "ethereal", Shader: "sequence", Colors: "CMYMC"},
			{Name: "corrupted", Shader: "sequence", Colors: "mKrKm"},
			{Name: "critical", Shader: "sequence", Colors: "ROYOR"},
			{Name: "poisoned", Shader: "sequence", Colors: "gGgk"},
			{Name: "stunned", Shader: "sequence", Colors: "WYWy"},
			{Name: "burning", Shader: "sequence", Colors: "RORr"},
			{Name: "frozen", Shader: "sequence", Colors: "CBYC"},
			{Name: "bleeding", Shader: "sequence", Colors: "rRrr"},
			{Name: "rainbow", Shader: "alternation", Colors: "ROWGCBM"},
			{Name: "amorous", Shader: "alternation", Colors: "rRMm"},
			{Name: "bee", Shader: "alternation", Colors: "KWWK"},
			{Name: "forest", Shader: "alternation", Colors: "gGwG"},
		},
		Keywords: KeywordsConfig{
			StopWords: []string{"the", "a", "an", "and", "or", "but", "for", "with", "to", "of", "in", "on", "at", "by"},
			Groups: []GroupConfig{
				{Name: "fire", Pattern: "fiery", CaseSensitive: false, Words: []string{"fire", "flame", "flames", "burn", "burning", "inferno"}},
				{Name: "frost", Pattern: "icy", CaseSensitive: false, Words: []string{"ice", "frost", "freeze", "frozen", "chill"}},
				{Name: "poison", Pattern: "toxic", CaseSensitive: false, Words: []string{"poison", "poisoned", "venom", "toxic"}},
				{Name: "lightning", Pattern: "electric", CaseSensitive: false, Words: []string{"lightning", "shock", "thunder", "spark"}},
				{Name: "holy", Pattern: "holy", CaseSensitive: false, Words: []string{"holy", "divine", "blessed", "radiant"}},
				{Name: "shadow", Pattern: "shadow", CaseSensitive: false, Words: []string{"shadow", "shadows", "darkness", "void"}},
				{Name: "treasure", Pattern: "golden", CaseSensitive: false, Words: []string{"gold", "treasure", "coins"}},
				{Name: "healing", Pattern: "G", CaseSensitive: false, Words: []string{"heal", "heals", "healed", "healing", "restore", "restores"}},
				{Name: "miss", Pattern: "w", CaseSensitive: false, Words: []string{"miss", "misses", "missed", "dodges", "blocked"}},
				{Name: "critical", Pattern: "critical", CaseSensitive: true, Words: []string{"CRITICAL", "CRIT"}},
			},
		},
		Spacing: SpacingConfig{
			Attached: []string{"CriticalMissNarrative"},
			Rules: []RuleConfig{
				{Prev: "none", Next: "DungeonHeader", Lines: 0},
				{Prev: "DungeonHeader", Next: "RoomHeader", Lines: 1},
				{Prev: "RoomHeader", Next: "RoomInfo", Lines: 1},
				{Prev: "RoomInfo", Next: "RoomHeader", Lines: 1},
				{Prev: "RoomCleared", Next: "RoomHeader", Lines: 1},
				{Prev: "RoomInfo", Next: "EnemyAppearance", Lines: 1},
				{Prev: "EnemyAppearance", Next: "EnemyStats", Lines: 1},
				{Prev: "EnemyStats", Next: "CombatAction", Lines: 1},
				{Prev: "HeroStats", Next: "CombatAction", Lines: 1},
				{Prev: "CombatAction", Next: "CombatAction", Lines: 0},
				{Prev: "EnvironmentalAction", Next: "CombatAction", Lines: 0},
				{Prev: "StatusEffect", Next: "CombatAction", Lines: 0},
				{Prev: "CombatAction", Next: "EnvironmentalAction", Lines: 1},
				{Prev: "EnvironmentalAction", Next: "EnvironmentalAction", Lines: 0},
				{Prev: "CombatAction", Next: "StatusEffect", Lines: 0},
				{Prev: "EnvironmentalAction", Next: "StatusEffect", Lines: 0},
				{Prev: "StatusEffect", Next: "StatusEffect", Lines: 1},
				{Prev: "CombatAction", Next: "PoisonDamage", Lines: 1},
				{Prev: "EnvironmentalAction", Next: "PoisonDamage", Lines: 1},
				{Prev: "PoisonDamage", Next: "CombatAction", Lines: 0},
				{Prev: "PoisonDamage", Next: "PoisonDamage", Lines: 0},
				{Prev: "CombatAction", Next: "Narrative", Lines: 1},
				{Prev: "EnvironmentalAction", Next: "Narrative", Lines: 1},
				{Prev: "Narrative", Next: "CombatAction", Lines: 0},
				{Prev: "CombatAction", Next: "CriticalMissNarrative", Lines: 0},
				{Prev: "CriticalMissNarrative", Next: "StatusEffect", Lines: 0},
				{Prev: "CombatAction", Next: "RoomCleared", Lines: 1},
				{Prev: "RoomInfo", Next: "SafeRoom", Lines: 1},
				{Prev: "CombatAction", Next: "SystemMessage", Lines: 0},
				{Prev: "EnvironmentalAction", Next: "SystemMessage", Lines: 0},
				{Prev: "EnemyStats", Next: "HeroStats", Lines: 0},
				{Prev: "MenuBlock", Next: "MenuBlock", Lines: 0},
			},
		},
		Mask: MaskConfig{
			Enabled:    false,
			Intensity:  10,
			Wavelength: 8,
			IntervalMS: 100,
		},
		Layer: LayerConfig{
			TemperatureIntensity: 1,
		},
		Pacing: PacingConfig{
			DefaultMS: 0,
			Blocks: map[string]int{
				"DungeonHeader":       300,
				"RoomHeader":          300,
				"EnemyAppearance":     300,
				"CombatAction":        400,
				"EnvironmentalAction": 400,
				"StatusEffect":        200,
				"Narrative":           600,
				"RoomCleared":         500,
			},
		},
	}
}
