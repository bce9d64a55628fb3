package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Env         string // local, dev, prod
	Address     string
	Timeout     time.Duration
	CORSOrigins []string
}

type StoreConfig struct {
	URL       string
	AuthToken string
}

type SeedConfig struct {
	Count int
}

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Seed   SeedConfig
}

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

var (
	ErrStoreURLMissing   = errors.New("STORE_URL is not defined")
	ErrStoreTokenMissing = errors.New("STORE_AUTH_TOKEN is not defined")
)

// Validate trims both values in place and fails on blanks.
func (c *StoreConfig) Validate() error {
	c.URL = strings.TrimSpace(c.URL)
	c.AuthToken = strings.TrimSpace(c.AuthToken)

	if c.URL == "" {
		return ErrStoreURLMissing
	}
	if c.AuthToken == "" {
		return ErrStoreTokenMissing
	}

	return nil
}

// Load reads .env.<ENV> and .env when present, then the process environment.
// Variables already set in the environment win over the files.
func Load() (*Config, error) {
	const op = "config.Load"

	env := strings.TrimSpace(os.Getenv("ENV"))
	if env == "" {
		env = EnvLocal
	}

	for _, file := range []string{".env." + env, ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %s: %w", op, file, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENV", EnvLocal)
	v.SetDefault("ADDRESS", ":8080")
	v.SetDefault("TIMEOUT", "5s")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SEED_COUNT", 500)

	timeout, err := time.ParseDuration(v.GetString("TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid TIMEOUT format: %w", op, err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Env:         v.GetString("ENV"),
			Address:     v.GetString("ADDRESS"),
			Timeout:     timeout,
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Store: StoreConfig{
			URL:       v.GetString("STORE_URL"),
			AuthToken: v.GetString("STORE_AUTH_TOKEN"),
		},
		Seed: SeedConfig{
			Count: v.GetInt("SEED_COUNT"),
		},
	}

	if err := cfg.Store.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
