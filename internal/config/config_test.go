package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/a1s/w1s/internal/config"
	"github.com/a1s/w1s/internal/config/data"
	"github.com/a1s/w1s/internal/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func profiles(t *testing.T, body string) *graphql.ProfileManager {
	t.Helper()
	m, err := graphql.NewProfileManager(writeFile(t, "endpoints.ini", body))
	require.NoError(t, err)
	return m
}

func TestConfigLoadDefaults(t *testing.T) {
	cfg := config.NewConfig(nil)
	require.NoError(t, cfg.Load(filepath.Join(t.TempDir(), "none.yaml"), false))

	assert.Equal(t, graphql.DefaultEndpoint, cfg.W1s.Endpoint)
	assert.Equal(t, config.DefaultPageSize, cfg.W1s.PageSize)
	assert.Equal(t, config.DefaultLocale, cfg.W1s.Locale)

	assert.Error(t, cfg.Load(filepath.Join(t.TempDir(), "none.yaml"), true))
}

func TestConfigLoadValidates(t *testing.T) {
	path := writeFile(t, "w1s.yaml", `w1s:
  endpoint: https://mirror.example.com/graphql
  pageSize: -3
  apiTimeout: bogus
  locale: fr
  retry:
    maxAttempts: 5
  cacheTTL: 0s
`)
	cfg := config.NewConfig(nil)
	require.NoError(t, cfg.Load(path, true))

	assert.Equal(t, "https://mirror.example.com/graphql", cfg.W1s.Endpoint)
	assert.Equal(t, config.DefaultPageSize, cfg.W1s.PageSize)
	assert.Equal(t, config.DefaultAPITimeout.String(), cfg.W1s.APITimeout)
	assert.Equal(t, "fr", cfg.W1s.Locale)
	assert.Equal(t, 5, cfg.W1s.Retry.MaxAttempts)
	assert.Equal(t, graphql.DefaultBaseDelay.String(), cfg.W1s.Retry.BaseDelay)

	ttl, err := cfg.W1s.GetCacheTTL()
	require.NoError(t, err)
	assert.Zero(t, ttl)
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w1s.yaml")
	cfg := config.NewConfig(nil)

	require.NoError(t, cfg.Save(path, false))
	assert.NoFileExists(t, path)

	cfg.W1s.PageSize = 25
	require.NoError(t, cfg.Save(path, true))

	other := config.NewConfig(nil)
	require.NoError(t, other.Load(path, true))
	assert.Equal(t, 25, other.W1s.PageSize)
}

func TestConfigRefinePrecedence(t *testing.T) {
	const endpoints = `[profile mirror]
endpoint = https://mirror.example.com/graphql
timeout = 7s
header.X-Api-Key = abc

[profile bare]
timeout = 3s
`

	uu := map[string]struct {
		fileEndpoint string
		flags        func(*data.Flags)
		endpoint     string
		timeout      time.Duration
		profile      string
	}{
		"defaults": {
			flags:    func(*data.Flags) {},
			endpoint: graphql.DefaultEndpoint,
			timeout:  config.DefaultAPITimeout,
			profile:  graphql.DefaultProfile,
		},
		"file": {
			fileEndpoint: "https://file.example.com/",
			flags:        func(*data.Flags) {},
			endpoint:     "https://file.example.com/",
			timeout:      config.DefaultAPITimeout,
			profile:      graphql.DefaultProfile,
		},
		"profile-over-file": {
			fileEndpoint: "https://file.example.com/",
			flags:        func(f *data.Flags) { *f.Profile = "mirror" },
			endpoint:     "https://mirror.example.com/graphql",
			timeout:      7 * time.Second,
			profile:      "mirror",
		},
		"profile-without-endpoint": {
			fileEndpoint: "https://file.example.com/",
			flags:        func(f *data.Flags) { *f.Profile = "bare" },
			endpoint:     "https://file.example.com/",
			timeout:      3 * time.Second,
			profile:      "bare",
		},
		"cli-over-profile": {
			flags: func(f *data.Flags) {
				*f.Profile = "mirror"
				*f.Endpoint = "http://localhost:4000/"
				*f.Timeout = "2s"
			},
			endpoint: "http://localhost:4000/",
			timeout:  2 * time.Second,
			profile:  "mirror",
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			settings := profiles(t, endpoints)
			cfg := config.NewConfig(settings)
			if u.fileEndpoint != "" {
				cfg.W1s.Endpoint = u.fileEndpoint
			}
			flags := data.NewFlags()
			u.flags(flags)

			require.NoError(t, cfg.Refine(flags, settings))
			cc, err := cfg.W1s.ClientConfig()
			require.NoError(t, err)
			assert.Equal(t, u.endpoint, cc.Endpoint)
			assert.Equal(t, u.timeout, cc.Timeout)
			assert.Equal(t, u.profile, cfg.W1s.ActiveProfile())
		})
	}
}

func TestConfigRefineHeaders(t *testing.T) {
	settings := profiles(t, "[profile mirror]\nheader.X-Api-Key = abc\n")
	cfg := config.NewConfig(settings)
	cfg.W1s.DefaultProfile = "mirror"

	require.NoError(t, cfg.Refine(nil, settings))
	cc, err := cfg.W1s.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X-Api-Key": "abc"}, cc.Headers)
}

func TestConfigRefineErrors(t *testing.T) {
	settings := profiles(t, "")

	flags := data.NewFlags()
	*flags.Profile = "nope"
	assert.Error(t, config.NewConfig(settings).Refine(flags, settings))

	flags = data.NewFlags()
	*flags.Timeout = "soon"
	assert.Error(t, config.NewConfig(settings).Refine(flags, settings))

	assert.Error(t, config.NewConfig(nil).Refine(nil, nil))
}

func TestW1sOverride(t *testing.T) {
	w := config.NewW1s()
	flags := data.NewFlags()
	*flags.PageSize = 20
	*flags.Locale = "de"
	*flags.Retries = 1
	*flags.LogLevel = "debug"
	*flags.Headless = true

	w.Override(flags)
	assert.Equal(t, 20, w.PageSize)
	assert.Equal(t, "de", w.Locale)
	assert.Equal(t, 1, w.Retry.MaxAttempts)
	assert.Equal(t, "debug", w.Logger.Level)
	assert.True(t, w.UI.Headless)

	w.Override(data.NewFlags())
	assert.Equal(t, 20, w.PageSize)
}

func TestInitLocs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(config.EnvConfigDir, "")
	t.Setenv(config.EnvStateDir, "")

	require.NoError(t, config.InitLocs())
	assert.Equal(t, filepath.Join(dir, "config", "w1s", "w1s.yaml"), config.AppConfigFile)
	assert.Equal(t, filepath.Join(dir, "config", "w1s", "endpoints.ini"), config.AppEndpointsFile)
	assert.Equal(t, filepath.Join(dir, "state", "w1s", "w1s.log"), config.AppLogFile)
	assert.DirExists(t, config.AppStateDir)
}

func TestInitLocsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.EnvConfigDir, filepath.Join(dir, "custom"))
	t.Setenv(config.EnvStateDir, filepath.Join(dir, "logs"))

	require.NoError(t, config.InitLocs())
	assert.Equal(t, filepath.Join(dir, "custom", "w1s.yaml"), config.AppConfigFile)
	assert.Equal(t, filepath.Join(dir, "logs", "w1s.log"), config.AppLogFile)
	assert.DirExists(t, config.AppConfigDir)
}
