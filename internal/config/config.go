package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SCOREBOARD_LOG_LEVEL.
const EnvPrefix = "SCOREBOARD"

// Config describes all runtime settings for the scoreboard binary.
//
// Loaded once in main, validated, then passed down explicitly.
type Config struct {
	Env    string       `mapstructure:"env"` // dev|stage|prod
	Log    LogConfig    `mapstructure:"log"`
	Feed   FeedConfig   `mapstructure:"feed"`
	Output OutputConfig `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug|info|warn|error
	Format string `mapstructure:"format"` // text|json
}

type FeedConfig struct {
	Files       []string      `mapstructure:"files"`
	Interval    time.Duration `mapstructure:"interval"` // 0 => replay as fast as possible
	StopOnError bool          `mapstructure:"stop_on_error"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // text|json
}

// Load reads defaults, then the optional config file at path, then
// SCOREBOARD_* environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("feed.files", []string{})
	v.SetDefault("feed.interval", "0s")
	v.SetDefault("feed.stop_on_error", false)

	v.SetDefault("output.format", "text")
}

func (c Config) Validate() error {
	switch c.Env {
	case "dev", "stage", "prod":
	default:
		return fmt.Errorf("unsupported env=%q (want dev|stage|prod)", c.Env)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log.level=%q (want debug|info|warn|error)", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported log.format=%q (want text|json)", c.Log.Format)
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("unsupported output.format=%q (want text|json)", c.Output.Format)
	}
	if c.Feed.Interval < 0 {
		return errors.New("feed.interval must not be negative")
	}
	if len(c.Feed.Files) == 0 {
		return errors.New("feed.files is empty")
	}
	return nil
}
