// Package config loads the client configuration from .threadly/conf.yaml.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/errors"
)

const (
	THREADLY_DIR = ".threadly"
	CONFIG_FILE  = "conf.yaml"

	// EnvURL overrides the backend base URL from the config file.
	EnvURL = "THREADLY_URL"

	DefaultURL         = "http://localhost:3001"
	DefaultSplashDelay = 2500 * time.Millisecond
	DefaultHomeRoute   = "/home"
	DefaultTimeout     = 30 * time.Second
)

// Config is the client configuration.
//
//nolint:revive // Field names match YAML structure
type Config struct {
	Url         string        `yaml:"url"`
	SplashDelay time.Duration `yaml:"splashDelay"`
	HomeRoute   string        `yaml:"homeRoute"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Url:         DefaultURL,
		SplashDelay: DefaultSplashDelay,
		HomeRoute:   DefaultHomeRoute,
		Timeout:     DefaultTimeout,
	}
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, THREADLY_DIR, CONFIG_FILE)
}

// Load reads the config file under dir, applies the THREADLY_URL override and fills defaults.
// A missing file is not an error.
func Load(dir string) (*Config, error) {
	conf := Default()
	confPath := Path(dir)

	switch _, err := os.Stat(confPath); {
	case err == nil:
		if err := ParseYamlFromFile(confPath, conf); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s: %v", confPath, err)
		}
		log.Debug("Loaded config from %s", confPath)
	case os.IsNotExist(err):
		log.Debug("No config at %s, using defaults", confPath)
	default:
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if env := strings.TrimSpace(os.Getenv(EnvURL)); env != "" {
		conf.Url = env
	}

	conf.applyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadFromWorkDir loads the config relative to the current working directory.
func LoadFromWorkDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

func (c *Config) applyDefaults() {
	if c.Url == "" {
		c.Url = DefaultURL
	}
	if c.SplashDelay == 0 {
		c.SplashDelay = DefaultSplashDelay
	}
	if c.HomeRoute == "" {
		c.HomeRoute = DefaultHomeRoute
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.Url)
	switch {
	case err != nil:
		problems = append(problems, fmt.Sprintf("url: %v", err))
	case u.Scheme != "http" && u.Scheme != "https":
		problems = append(problems, fmt.Sprintf("url: unsupported scheme %q", u.Scheme))
	case u.Host == "":
		problems = append(problems, "url: missing host")
	}
	if c.SplashDelay < 0 {
		problems = append(problems, "splashDelay must not be negative")
	}
	if c.Timeout < 0 {
		problems = append(problems, "timeout must not be negative")
	}
	if !strings.HasPrefix(c.HomeRoute, "/") {
		problems = append(problems, "homeRoute must start with /")
	}

	if len(problems) > 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
