// Package config holds the indicator settings and their YAML persistence.
package config

import "container-indicator/internal/world"

// Default colours, 0xRRGGBB.
const (
	DefaultIndicatorColor Color = 0x6FA9B4
	DefaultFuelColor      Color = 0xCF8261
)

// Config holds every user-facing setting.
type Config struct {
	Enabled        bool          `yaml:"enabled"`
	IndicatorColor Color         `yaml:"indicator_color"`
	FuelColor      Color         `yaml:"fuel_color"`
	Blocks         BlockToggles  `yaml:"blocks"`
	Refresh        RefreshConfig `yaml:"refresh"`
	Logging        LoggingConfig `yaml:"logging"`
}

// BlockToggles switches the indicator on or off per block family.
type BlockToggles struct {
	Hopper       bool `yaml:"hopper"`
	Dispenser    bool `yaml:"dispenser"`
	Dropper      bool `yaml:"dropper"`
	Barrel       bool `yaml:"barrel"`
	Crafter      bool `yaml:"crafter"`
	Furnace      bool `yaml:"furnace"`
	BlastFurnace bool `yaml:"blast_furnace"`
	Smoker       bool `yaml:"smoker"`
	DecoratedPot bool `yaml:"decorated_pot"`
	Chest        bool `yaml:"chest"`
	TrappedChest bool `yaml:"trapped_chest"`
	CopperChest  bool `yaml:"copper_chest"`
}

// RefreshConfig tunes the bulk refresh sweep.
type RefreshConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Enabled:        true,
		IndicatorColor: DefaultIndicatorColor,
		FuelColor:      DefaultFuelColor,
		Blocks: BlockToggles{
			Hopper:       true,
			Dispenser:    true,
			Dropper:      true,
			Barrel:       true,
			Crafter:      true,
			Furnace:      true,
			BlastFurnace: true,
			Smoker:       true,
			DecoratedPot: true,
			Chest:        true,
			TrappedChest: true,
			CopperChest:  true,
		},
		Refresh: RefreshConfig{
			BatchSize: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Enabled reports whether indicators are on for the block type. Types without a toggle
// are never enabled.
func (b BlockToggles) Enabled(t world.BlockType) bool {
	switch t {
	case world.BlockTypeHopper:
		return b.Hopper
	case world.BlockTypeDispenser:
		return b.Dispenser
	case world.BlockTypeDropper:
		return b.Dropper
	case world.BlockTypeBarrel:
		return b.Barrel
	case world.BlockTypeCrafter:
		return b.Crafter
	case world.BlockTypeFurnace:
		return b.Furnace
	case world.BlockTypeBlastFurnace:
		return b.BlastFurnace
	case world.BlockTypeSmoker:
		return b.Smoker
	case world.BlockTypeDecoratedPot:
		return b.DecoratedPot
	case world.BlockTypeChest:
		return b.Chest
	case world.BlockTypeTrappedChest:
		return b.TrappedChest
	case world.BlockTypeCopperChest, world.BlockTypeExposedCopperChest,
		world.BlockTypeWeatheredCopperChest, world.BlockTypeOxidizedCopperChest:
		return b.CopperChest
	}
	return false
}

// normalize repairs values a hand-edited file may have broken.
func (c *Config) normalize() {
	c.IndicatorColor &= 0xFFFFFF
	c.FuelColor &= 0xFFFFFF
	if c.Refresh.BatchSize <= 0 {
		c.Refresh.BatchSize = Default().Refresh.BatchSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
