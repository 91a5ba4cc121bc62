package config

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/a1s/w1s/internal/config/data"
	"github.com/a1s/w1s/internal/graphql"
	"github.com/a1s/w1s/internal/model1"
)

// Default values
const (
	DefaultAPITimeout = graphql.DefaultTimeout
	DefaultCacheTTL   = graphql.DefaultCacheTTL
	DefaultPageSize   = model1.DefaultPageSize
	DefaultLocale     = model1.DefaultLocale
)

// W1s represents the w1s global configuration.
type W1s struct {
	Endpoint       string      `yaml:"endpoint"`
	APITimeout     string      `yaml:"apiTimeout"`
	PageSize       int         `yaml:"pageSize"`
	Locale         string      `yaml:"locale"`
	Retry          data.Retry  `yaml:"retry"`
	CacheTTL       string      `yaml:"cacheTTL"`
	DefaultProfile string      `yaml:"defaultProfile"`
	UI             data.UI     `yaml:"ui"`
	Logger         data.Logger `yaml:"logger"`

	activeProfile  string
	activeEndpoint string
	activeTimeout  time.Duration
	headers        map[string]string
	mx             sync.RWMutex
}

// NewW1s creates a W1s with default settings.
func NewW1s() *W1s {
	return &W1s{
		Endpoint:   graphql.DefaultEndpoint,
		APITimeout: DefaultAPITimeout.String(),
		PageSize:   DefaultPageSize,
		Locale:     DefaultLocale,
		Retry: data.Retry{
			MaxAttempts: graphql.DefaultMaxAttempts,
			BaseDelay:   graphql.DefaultBaseDelay.String(),
		},
		CacheTTL: DefaultCacheTTL.String(),
		Logger:   data.Logger{Level: DefaultLogLevel},
	}
}

// Validate resets invalid settings to their defaults.
func (w *W1s) Validate() {
	w.mx.Lock()
	defer w.mx.Unlock()

	if w.Endpoint == "" {
		w.Endpoint = graphql.DefaultEndpoint
	}
	if d, err := time.ParseDuration(w.APITimeout); err != nil || d <= 0 {
		w.APITimeout = DefaultAPITimeout.String()
	}
	if w.PageSize < 1 {
		w.PageSize = DefaultPageSize
	}
	if w.Locale == "" {
		w.Locale = DefaultLocale
	}
	if w.Retry.MaxAttempts < 1 {
		w.Retry.MaxAttempts = graphql.DefaultMaxAttempts
	}
	if d, err := time.ParseDuration(w.Retry.BaseDelay); err != nil || d <= 0 {
		w.Retry.BaseDelay = graphql.DefaultBaseDelay.String()
	}
	if d, err := time.ParseDuration(w.CacheTTL); err != nil || d < 0 {
		w.CacheTTL = DefaultCacheTTL.String()
	}
	if w.Logger.Level == "" {
		w.Logger.Level = DefaultLogLevel
	}
}

// Override applies CLI flag overrides to the configuration.
func (w *W1s) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	w.mx.Lock()
	defer w.mx.Unlock()

	if IsIntSet(flags.PageSize) {
		w.PageSize = *flags.PageSize
	}
	if IsStringSet(flags.Locale) {
		w.Locale = *flags.Locale
	}
	if IsIntSet(flags.Retries) {
		w.Retry.MaxAttempts = *flags.Retries
	}
	if IsStringSet(flags.LogLevel) {
		w.Logger.Level = *flags.LogLevel
	}
	if IsBoolSet(flags.Headless) {
		w.UI.Headless = true
	}
	if IsStringSet(flags.Profile) {
		w.DefaultProfile = *flags.Profile
	}
}

// ActiveProfile returns the currently active endpoint profile.
func (w *W1s) ActiveProfile() string {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.activeProfile
}

// ActiveEndpoint returns the resolved GraphQL endpoint.
func (w *W1s) ActiveEndpoint() string {
	w.mx.RLock()
	defer w.mx.RUnlock()
	if w.activeEndpoint == "" {
		return w.Endpoint
	}
	return w.activeEndpoint
}

// activate records the resolved endpoint settings.
func (w *W1s) activate(profile, endpoint string, timeout time.Duration, headers map[string]string) {
	w.mx.Lock()
	defer w.mx.Unlock()

	w.activeProfile, w.activeEndpoint, w.activeTimeout = profile, endpoint, timeout
	w.headers = maps.Clone(headers)
}

// GetAPITimeout returns the resolved API timeout.
func (w *W1s) GetAPITimeout() (time.Duration, error) {
	w.mx.RLock()
	active, timeoutStr := w.activeTimeout, w.APITimeout
	w.mx.RUnlock()

	if active > 0 {
		return active, nil
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return 0, fmt.Errorf("invalid API timeout %q: %w", timeoutStr, err)
	}

	return timeout, nil
}

// GetCacheTTL returns the parsed response cache TTL. Zero disables caching.
func (w *W1s) GetCacheTTL() (time.Duration, error) {
	w.mx.RLock()
	s := w.CacheTTL
	w.mx.RUnlock()

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid cache TTL %q: %w", s, err)
	}

	return d, nil
}

// ClientConfig builds the GraphQL client settings.
func (w *W1s) ClientConfig() (*graphql.ClientConfig, error) {
	timeout, err := w.GetAPITimeout()
	if err != nil {
		return nil, err
	}
	ttl, err := w.GetCacheTTL()
	if err != nil {
		return nil, err
	}

	w.mx.RLock()
	defer w.mx.RUnlock()

	delay, err := time.ParseDuration(w.Retry.BaseDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid retry delay %q: %w", w.Retry.BaseDelay, err)
	}
	endpoint := w.activeEndpoint
	if endpoint == "" {
		endpoint = w.Endpoint
	}

	return &graphql.ClientConfig{
		Endpoint:    endpoint,
		Timeout:     timeout,
		MaxAttempts: w.Retry.MaxAttempts,
		BaseDelay:   delay,
		CacheTTL:    ttl,
		Headers:     maps.Clone(w.headers),
	}, nil
}
