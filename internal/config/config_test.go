package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Dice: DiceConfig{
			Source: "seeded",
			Seed:   42,
		},
		Travel: TravelConfig{
			CautiousMultiplier: 2,
			ShipMultiplier:     0.3125,
		},
		Content: ContentConfig{
			CareersDir:  "content/careers",
			EntitiesDir: "content/entities",
			ItemsDir:    "content/items",
		},
		Simulation: SimulationConfig{
			Trials:  1000,
			Workers: 4,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
dice:
  source: seeded
  seed: 1234
travel:
  cautious_multiplier: 3
content:
  items_dir: mods/items
scripting:
  dir: mods/scripts
  instruction_limit: 5000
simulation:
  workers: 8
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "seeded", cfg.Dice.Source)
	assert.Equal(t, int64(1234), cfg.Dice.Seed)
	assert.Equal(t, 3, cfg.Travel.CautiousMultiplier)
	assert.Equal(t, 0.3125, cfg.Travel.ShipMultiplier, "unset keys keep their defaults")
	assert.Equal(t, "mods/items", cfg.Content.ItemsDir)
	assert.Equal(t, "content/careers", cfg.Content.CareersDir)
	assert.Equal(t, "mods/scripts", cfg.Scripting.Dir)
	assert.Equal(t, 5000, cfg.Scripting.InstructionLimit)
	assert.Equal(t, 1000, cfg.Simulation.Trials)
	assert.Equal(t, 8, cfg.Simulation.Workers)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "crypto", cfg.Dice.Source)
	assert.Equal(t, 2, cfg.Travel.CautiousMultiplier)
	assert.Equal(t, "content/entities", cfg.Content.EntitiesDir)
	assert.Equal(t, 4, cfg.Simulation.Workers)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RULES_DICE_SOURCE", "seeded")
	t.Setenv("RULES_DICE_SEED", "77")
	t.Setenv("RULES_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "seeded", cfg.Dice.Source)
	assert.Equal(t, int64(77), cfg.Dice.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("travel.ship_multiplier", 0.5)
	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Travel.ShipMultiplier)

	v.Set("simulation.trials", 0)
	_, err = LoadFromViper(v)
	assert.ErrorContains(t, err, "simulation.trials")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateDiceSource(t *testing.T) {
	cfg := validConfig()
	cfg.Dice.Source = "loaded"
	assert.ErrorContains(t, cfg.Validate(), "dice.source")
}

func TestValidateContentDirs(t *testing.T) {
	cfg := validConfig()
	cfg.Content = ContentConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.careers_dir must not be empty; content.entities_dir must not be empty; content.items_dir must not be empty")
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Scripting.InstructionLimit = -1
	cfg.Simulation.Workers = 0
	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"logging.level", "scripting.instruction_limit", "simulation.workers"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestPropertyTravelMultipliers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cautious := rapid.IntRange(-10, 10).Draw(t, "cautious")
		ship := rapid.Float64Range(-2, 2).Draw(t, "ship")
		cfg := validConfig()
		cfg.Travel = TravelConfig{CautiousMultiplier: cautious, ShipMultiplier: ship}
		err := cfg.Validate()
		valid := cautious >= 1 && ship > 0
		if valid && err != nil {
			t.Fatalf("valid multipliers (%d, %v) rejected: %v", cautious, ship, err)
		}
		if !valid && err == nil {
			t.Fatalf("invalid multipliers (%d, %v) accepted", cautious, ship)
		}
	})
}

func TestPropertySimulationCounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		trials := rapid.IntRange(-5, 5000).Draw(t, "trials")
		workers := rapid.IntRange(-5, 64).Draw(t, "workers")
		cfg := validConfig()
		cfg.Simulation = SimulationConfig{Trials: trials, Workers: workers}
		if err := cfg.Validate(); (err == nil) != (trials >= 1 && workers >= 1) {
			t.Fatalf("trials=%d workers=%d: unexpected result %v", trials, workers, err)
		}
	})
}
