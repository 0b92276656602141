package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"katas-server/internal/util"
)

// Config provides configuration for the katas server and CLI
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" split_words:"true"`
	Log    struct {
		Level             string `yaml:"level" split_words:"true"`
		Format            string `yaml:"format" split_words:"true"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" split_words:"true"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" split_words:"true"`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" split_words:"true"`
		Path    string `yaml:"path" split_words:"true"`
	} `yaml:"metrics"`
	Wrap struct {
		DefaultColumns int `yaml:"defaultColumns" split_words:"true"`
	} `yaml:"wrap"`
	ZigZag struct {
		MaxSize int `yaml:"maxSize" split_words:"true"`
	} `yaml:"zigzag"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	cfg.Wrap.DefaultColumns = 80
	cfg.ZigZag.MaxSize = 64

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file, then the environment
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("KATAS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("katas", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
