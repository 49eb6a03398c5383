package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "JOKERSCORE"

type Config struct {
	Log     LogConfig `mapstructure:"log"`
	Explain bool      `mapstructure:"explain"`
}

type LogConfig struct {
	Mode  string `mapstructure:"mode"` // development, production
	Level string `mapstructure:"level"`
}

// RegisterFlags adds the flags LoadConfig knows how to bind.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Bool("explain", false, "print a step by step breakdown of the score to stderr")
	flags.String("config", "", "optional YAML config file")
	flags.String("log-level", "warn", "debug, info, warn or error")
}

// LoadConfig merges, lowest priority first: defaults, the config file,
// JOKERSCORE_* environment variables (a .env file is read if present), flags.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	// missing .env is fine
	godotenv.Load()

	v := viper.New()
	v.SetDefault("log.mode", "development")
	v.SetDefault("log.level", "warn")
	v.SetDefault("explain", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			"explain":   "explain",
			"log.level": "log-level",
			"config":    "config",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Mode {
	case "development", "production":
		return nil
	}
	return fmt.Errorf("invalid log mode %q (want development or production)", c.Log.Mode)
}
