package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Queries  string `yaml:"queries"`
	Out      string `yaml:"out"`
	Package  string `yaml:"package"`
	Language string `yaml:"language"`
}

type Flags struct {
	Queries  string
	Out      string
	Package  string
	Language string
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Queries = expandEnv(cfg.Queries)
	cfg.Out = expandEnv(cfg.Out)
	cfg.Package = expandEnv(cfg.Package)
	cfg.Language = expandEnv(cfg.Language)

	return &cfg, nil
}

func (c *Config) GetQueries(flags *Flags) (string, error) {
	if flags != nil && flags.Queries != "" {
		return flags.Queries, nil
	}
	if c.Queries != "" {
		return c.Queries, nil
	}
	return "", fmt.Errorf("queries path is required (set in config or pass --queries flag)")
}

func (c *Config) GetOut(flags *Flags) string {
	if flags != nil && flags.Out != "" {
		return flags.Out
	}
	if c.Out != "" {
		return c.Out
	}
	return "queries"
}

func (c *Config) GetPackage(flags *Flags) string {
	if flags != nil && flags.Package != "" {
		return flags.Package
	}
	if c.Package != "" {
		return c.Package
	}
	return "queries"
}

func (c *Config) GetLanguage(flags *Flags) string {
	if flags != nil && flags.Language != "" {
		return flags.Language
	}
	if c.Language != "" {
		return c.Language
	}
	return "go"
}

func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envVar := s[2 : len(s)-1]
		return os.Getenv(envVar)
	}
	return os.ExpandEnv(s)
}
