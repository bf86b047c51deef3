package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
)

// envPrefix is the environment-variable prefix for overrides, e.g.
// CRAWLVALUE_LOG_LEVEL=debug or CRAWLVALUE_REDIS_ADDR=redis:6379.
const envPrefix = "CRAWLVALUE"

// newViper constructs a viper instance wired for this platform's conventions:
// env overrides with the CRAWLVALUE prefix and dots mapped to underscores.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Scalar knobs are registered as defaults so that AutomaticEnv can
	// resolve them even when no config file is present.  Structured tables
	// (signatures, base rates) come from DefaultConfig and are replaced
	// wholesale by file configuration.
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.acks", "all")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.key_prefix", "crawlvalue")
	v.SetDefault("worker.concurrency", 8)

	return v
}

// Load reads configuration from the optional file at path, applies environment
// overrides, and validates the result.  An empty path loads pure defaults plus
// environment overrides.  Supported file formats are whatever viper supports
// for the given extension (yaml, json, toml).
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeValidation, "failed to read config file").
				WithDetail(path)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "configuration is invalid")
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables
// only, with no config file.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// MustLoad is Load that panics on error.  Intended for main() wiring where a
// broken configuration must abort startup.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

//Personal.AI order the ending
