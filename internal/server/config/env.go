package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays PRESSKIT_* environment variables onto config. Unset
// variables leave the current value untouched. A malformed value panics,
// matching how a broken JSON file is treated.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
