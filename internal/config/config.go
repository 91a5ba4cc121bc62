package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/a1s/w1s/internal/config/data"
	"github.com/a1s/w1s/internal/graphql"
)

// Config is the root configuration for the application.
type Config struct {
	W1s      *W1s `yaml:"w1s"`
	conn     graphql.Connection
	settings graphql.ProfileSettings
	mx       sync.RWMutex
}

// NewConfig creates a new Config with the given profile settings.
func NewConfig(settings graphql.ProfileSettings) *Config {
	return &Config{
		W1s:      NewW1s(),
		settings: settings,
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if !data.Exists(path) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := data.LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if c.W1s == nil {
		c.W1s = NewW1s()
	}
	c.W1s.Validate()

	return nil
}

// Save saves the configuration to the given path.
// If force is false, only saves if the file already exists.
func (c *Config) Save(path string, force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if path == "" {
		return fmt.Errorf("no config file path configured")
	}
	if !force && !data.Exists(path) {
		return nil
	}

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine resolves the endpoint settings. Precedence for endpoint and timeout
// is CLI flag, then endpoint profile, then config file, then defaults.
// Profile: CLI --profile > config defaultProfile > settings current profile.
func (c *Config) Refine(flags *data.Flags, settings graphql.ProfileSettings) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.W1s == nil {
		return fmt.Errorf("config.W1s is nil")
	}
	if settings == nil {
		return fmt.Errorf("no profile settings available")
	}
	c.settings = settings

	if flags != nil {
		c.W1s.Override(flags)
	}

	profile := c.W1s.DefaultProfile
	if profile == "" {
		current, err := settings.CurrentProfileName()
		if err != nil {
			return fmt.Errorf("failed to get default profile: %w", err)
		}
		profile = current
	}
	p, err := settings.GetProfile(profile)
	if err != nil {
		return fmt.Errorf("profile %q not found: %w", profile, err)
	}
	if err := settings.SetActiveProfile(profile); err != nil {
		return err
	}

	endpoint := c.W1s.Endpoint
	if p.Endpoint != "" {
		endpoint = p.Endpoint
	}
	if flags != nil && IsStringSet(flags.Endpoint) {
		endpoint = *flags.Endpoint
	}

	timeout := p.Timeout
	if flags != nil && IsStringSet(flags.Timeout) {
		d, err := time.ParseDuration(*flags.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout %q", *flags.Timeout)
		}
		timeout = d
	}

	c.W1s.activate(profile, endpoint, timeout, p.Headers)

	return nil
}

// Connection returns the GraphQL connection.
func (c *Config) Connection() graphql.Connection {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.conn
}

// SetConnection sets the GraphQL connection.
func (c *Config) SetConnection(conn graphql.Connection) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.conn = conn
}

// Settings returns the endpoint profile settings.
func (c *Config) Settings() graphql.ProfileSettings {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.settings
}
