// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// LogLevel overrides the zap log level (e.g. "debug", "info").
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// SimInterval is the live-update tick period (e.g. "10s").
	SimInterval string `mapstructure:"SIM_INTERVAL"`
	// SimMutationRate is the per-claim mutation probability per tick, in [0, 1].
	SimMutationRate float64 `mapstructure:"SIM_MUTATION_RATE"`
	// SeedPolicyCount is how many policies the generator seeds.
	SeedPolicyCount int `mapstructure:"SEED_POLICY_COUNT"`
	// SeedClaimCount is how many claims the generator seeds.
	SeedClaimCount int `mapstructure:"SEED_CLAIM_COUNT"`
	// SeedActivityCount is how many activity entries the generator seeds.
	SeedActivityCount int `mapstructure:"SEED_ACTIVITY_COUNT"`
	// RandSeed fixes the generator seed for reproducible datasets; 0 means time-seeded.
	RandSeed uint64 `mapstructure:"RAND_SEED"`
}

// Load reads .env (if present), then builds and validates Config from the
// environment via Viper. Missing .env is ignored. Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("SIM_INTERVAL", "10s")
	v.SetDefault("SIM_MUTATION_RATE", 0.2)
	v.SetDefault("SEED_POLICY_COUNT", 10)
	v.SetDefault("SEED_CLAIM_COUNT", 15)
	v.SetDefault("SEED_ACTIVITY_COUNT", 20)
	v.SetDefault("RAND_SEED", 0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.SimMutationRate < 0 || cfg.SimMutationRate > 1 {
		return nil, errors.New("config: SIM_MUTATION_RATE must be between 0 and 1")
	}
	if cfg.SeedPolicyCount <= 0 || cfg.SeedClaimCount <= 0 || cfg.SeedActivityCount < 0 {
		return nil, errors.New("config: seed counts must be positive")
	}

	return &cfg, nil
}

// Interval parses SimInterval as a time.Duration. Returns 10s if unset or
// invalid.
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.SimInterval)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
