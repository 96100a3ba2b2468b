package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Version       int           `toml:"version"`
	SourcePaths   []string      `toml:"source_paths"`
	Exclude       Exclude       `toml:"exclude"`
	Watch         Watch         `toml:"watch"`
	Output        Output        `toml:"output"`
	DB            Database      `toml:"db"`
	Observability Observability `toml:"observability"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce  time.Duration `toml:"debounce"`
	RateLimit float64       `toml:"rate_limit"`
	Burst     int           `toml:"burst"`
}

type Output struct {
	Formats    []string `toml:"formats"`
	Dir        string   `toml:"dir"`
	Stylesheet string   `toml:"stylesheet"`
	Screen     bool     `toml:"screen"`
}

type Database struct {
	Enabled     bool          `toml:"enabled"`
	Path        string        `toml:"path"`
	BusyTimeout time.Duration `toml:"busy_timeout"`
}

type Observability struct {
	Enabled      bool   `toml:"enabled"`
	Address      string `toml:"address"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

// knownFormats are the renderers the output layer can produce.
var knownFormats = map[string]bool{
	"text":     true,
	"html":     true,
	"markdown": true,
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := validateVersion(&cfg); err != nil {
		return nil, err
	}
	if err := validateOutput(&cfg); err != nil {
		return nil, err
	}
	if err := validateWatch(&cfg); err != nil {
		return nil, err
	}
	if err := validateObservability(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if len(cfg.SourcePaths) == 0 {
		cfg.SourcePaths = []string{"."}
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{".git", "__pycache__", "*venv*"}
	}

	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RateLimit <= 0 {
		cfg.Watch.RateLimit = 4
	}
	if cfg.Watch.Burst <= 0 {
		cfg.Watch.Burst = 8
	}

	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"text"}
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		cfg.Output.Dir = "docs"
	}
	if strings.TrimSpace(cfg.Output.Stylesheet) == "" {
		cfg.Output.Stylesheet = "docu.css"
	}

	if strings.TrimSpace(cfg.DB.Path) == "" {
		cfg.DB.Path = "docuscan.db"
	}
	if cfg.DB.BusyTimeout <= 0 {
		cfg.DB.BusyTimeout = 5 * time.Second
	}

	if strings.TrimSpace(cfg.Observability.Address) == "" {
		cfg.Observability.Address = "127.0.0.1:9465"
	}
}

// KnownFormat reports whether name is a renderer the output layer supports.
func KnownFormat(name string) bool {
	return knownFormats[strings.ToLower(strings.TrimSpace(name))]
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	return nil
}

func validateOutput(cfg *Config) error {
	for _, f := range cfg.Output.Formats {
		if !knownFormats[strings.ToLower(strings.TrimSpace(f))] {
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

func validateWatch(cfg *Config) error {
	if cfg.Watch.Debounce > time.Minute {
		return fmt.Errorf("watch debounce %v is unreasonably large", cfg.Watch.Debounce)
	}
	return nil
}

func validateObservability(cfg *Config) error {
	if !cfg.Observability.Enabled {
		return nil
	}
	if strings.TrimSpace(cfg.Observability.Address) == "" {
		return fmt.Errorf("observability enabled but no listen address configured")
	}
	return nil
}
