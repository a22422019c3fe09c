package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides cfg with any BLOCKFALL_* environment variables that are
// set. Unset variables leave the loaded values alone.
func ApplyEnv(cfg *BlocksConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
