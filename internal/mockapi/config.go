package mockapi

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dpbr/dpbr-client/internal/flagx"
)

// ServerConfig configures cmd/mockapi. Environment first, then flags.
type ServerConfig struct {
	Addr       string        `env:"MOCKAPI_ADDR" envDefault:":8000"`
	Prefix     string        `env:"PUBLIC_API_PREFIX" envDefault:"/api/v1"`
	Secret     string        `env:"MOCKAPI_SECRET"`
	TokenTTL   time.Duration `env:"MOCKAPI_TOKEN_TTL" envDefault:"1h"`
	LogBackend string        `env:"LOG_BACKEND" envDefault:"slog"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`
}

func (c ServerConfig) Server() Config {
	return Config{Prefix: c.Prefix, Secret: []byte(c.Secret), TokenTTL: c.TokenTTL}
}

// LoadServerConfig reads the environment and then -a (listen address)
// and -p (prefix) from args.
func LoadServerConfig(args []string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("mockapi", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.Prefix, "p", cfg.Prefix, "API prefix")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-p"})); err != nil {
		return cfg, err
	}
	return cfg, nil
}
