package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BADGER_DIR overrides the temp dir used for the scenario database.
	BadgerDir string `envconfig:"E2E_BADGER_DIR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_DRAW_SEED fixes the engine's random seed for reproducible runs
	DrawSeed int64 `envconfig:"E2E_DRAW_SEED" default:"1"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
