package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	Bot      Bot    `yaml:"bot"`
}

type Bot struct {
	Delay string `yaml:"delay" env:"BOT_DELAY" env-default:"400ms"`
}

// MustLoad - loads the configuration from path, falling back to environment
// values and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
