// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go-trion-combat/internal/config"

	"github.com/spf13/viper"
)

// TriggerLibrary is a map holding all trigger definitions, keyed by their ID.
var TriggerLibrary map[string]TriggerDefinition

// Balance holds the active runtime tuning. Systems read it instead of the
// raw constants, so a balance file can override values without a rebuild.
var Balance BalanceRuntime

// BalanceRuntime — параметры симуляции, допускающие переопределение.
type BalanceRuntime struct {
	ArenaRadius float64
	DefeatGrace float64
}

// ResetBalance restores the built-in tuning values.
func ResetBalance() {
	Balance = BalanceRuntime{
		ArenaRadius: config.ArenaRadius,
		DefeatGrace: config.DefeatGraceDelay,
	}
}

func init() {
	LoadDefaults()
	ResetBalance()
}

// LoadDefaults populates the TriggerLibrary from the built-in catalog.
func LoadDefaults() {
	TriggerLibrary = make(map[string]TriggerDefinition, len(defaultTriggers))
	for _, def := range defaultTriggers {
		TriggerLibrary[def.ID] = def
	}
}

// LoadTriggerDefinitions reads a trigger catalog file and replaces the
// TriggerLibrary. The file is a JSON array of TriggerDefinition.
func LoadTriggerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read trigger definitions file: %w", err)
	}

	var triggerDefs []TriggerDefinition
	if err := json.Unmarshal(file, &triggerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal trigger definitions: %w", err)
	}

	lib := make(map[string]TriggerDefinition, len(triggerDefs))
	for _, def := range triggerDefs {
		if def.ID == "" {
			return fmt.Errorf("trigger definition with empty id in %s", path)
		}
		lib[def.ID] = def
	}
	TriggerLibrary = lib
	return nil
}

// BalanceConfig carries the tunable simulation parameters that may be
// overridden from a balance file. Zero values mean "use the default".
type BalanceConfig struct {
	Seed           int64   `mapstructure:"seed"`
	TriggerCatalog string  `mapstructure:"triggerCatalog"`
	ArenaRadius    float64 `mapstructure:"arenaRadius"`
	DefeatGrace    float64 `mapstructure:"defeatGrace"`
}

// LoadBalance reads balance.json from configDir via viper. A missing file is
// not an error: the built-in defaults stay in effect.
func LoadBalance(configDir string) (BalanceConfig, error) {
	v := viper.New()
	v.SetDefault("seed", 0)
	v.SetDefault("triggerCatalog", "")
	v.SetDefault("arenaRadius", 0.0)
	v.SetDefault("defeatGrace", 0.0)

	v.SetConfigName("balance")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	var cfg BalanceConfig
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error reading balance file: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding balance file: %w", err)
	}

	if cfg.TriggerCatalog != "" {
		if err := LoadTriggerDefinitions(cfg.TriggerCatalog); err != nil {
			return cfg, err
		}
	}
	if cfg.ArenaRadius > 0 {
		Balance.ArenaRadius = cfg.ArenaRadius
	}
	if cfg.DefeatGrace > 0 {
		Balance.DefeatGrace = cfg.DefeatGrace
	}
	return cfg, nil
}
