package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// MaxVerbosity is the highest accepted -v count.
const MaxVerbosity = 2

// Config defines env-driven settings for the echo service.
type Config struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            string        `env:"PORT" envDefault:"7000"`
	APIBasePath     string        `env:"API_BASE_PATH" envDefault:"/"`
	EnableMetrics   bool          `env:"API_ENABLE_METRICS" envDefault:"true"`
	Verbosity       int           `env:"LOG_VERBOSITY" envDefault:"0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load parses environment variables into a Config and applies command line
// overrides from args. Flags that are not given leave the env value in place.
// Load returns pflag.ErrHelp when -h/--help is requested.
func Load(args []string) (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := pflag.NewFlagSet("echoservice", pflag.ContinueOnError)
	var (
		address         string
		basePath        string
		metrics         bool
		verbosity       int
		shutdownTimeout time.Duration
	)
	fs.StringVarP(&address, "address", "a", cfg.Addr(), "HTTP serving address, test clients should connect to this")
	fs.StringVar(&basePath, "base-path", cfg.APIBasePath, "prefix for all routes")
	fs.BoolVar(&metrics, "metrics", cfg.EnableMetrics, "expose Prometheus metrics on /metrics")
	fs.CountVarP(&verbosity, "verbose", "v", "increase logging verbosity by each given -v up to 2. 0 = warning (default), 1 = info, 2 = debug")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "time allowed for in-flight requests on shutdown")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.Changed("address") {
		host, port, err := net.SplitHostPort(address)
		if err != nil {
			return cfg, fmt.Errorf("invalid address %q: %w", address, err)
		}
		cfg.Host, cfg.Port = host, port
	}
	if fs.Changed("base-path") {
		cfg.APIBasePath = basePath
	}
	if fs.Changed("metrics") {
		cfg.EnableMetrics = metrics
	}
	if fs.Changed("verbose") {
		cfg.Verbosity = verbosity
	}
	if fs.Changed("shutdown-timeout") {
		cfg.ShutdownTimeout = shutdownTimeout
	}

	if cfg.Verbosity < 0 || cfg.Verbosity > MaxVerbosity {
		return cfg, fmt.Errorf("unknown verbosity level %d", cfg.Verbosity)
	}
	return cfg, nil
}
