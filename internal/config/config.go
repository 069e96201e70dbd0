package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
}

type ServerConfig struct {
	Addr   string `yaml:"addr"`
	DBPath string `yaml:"db_path"`
}

type ClientConfig struct {
	BaseURL string `yaml:"base_url"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Addr: "127.0.0.1:8000"},
		Client: ClientConfig{BaseURL: "http://127.0.0.1:8000"},
	}
}

// Load reads the optional YAML file and applies environment overrides on
// top of the defaults. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HMCTS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HMCTS_DB_PATH"); v != "" {
		cfg.Server.DBPath = v
	}
	if v := os.Getenv("HMCTS_BASE_URL"); v != "" {
		cfg.Client.BaseURL = v
	}
}
