package graphql

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endpointsINI = `
[default]
endpoint = https://countries.example.com/

[profile mirror]
endpoint = https://mirror.example.com/graphql
timeout = 10s
header.Authorization = Bearer xyz
`

func writeINI(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestNewProfileManager_MissingFile(t *testing.T) {
	m, err := NewProfileManager(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultProfile}, m.ProfileNames())
	p, err := m.GetProfile(DefaultProfile)
	require.NoError(t, err)
	assert.Empty(t, p.Endpoint)
}

func TestNewProfileManager_LoadsProfiles(t *testing.T) {
	m, err := NewProfileManager(writeINI(t, endpointsINI))
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "mirror"}, m.ProfileNames())

	def, err := m.GetProfile("default")
	require.NoError(t, err)
	assert.Equal(t, "https://countries.example.com/", def.Endpoint)

	mirror, err := m.GetProfile("mirror")
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.com/graphql", mirror.Endpoint)
	assert.Equal(t, 10*time.Second, mirror.Timeout)
	assert.Equal(t, map[string]string{"Authorization": "Bearer xyz"}, mirror.Headers)
}

func TestNewProfileManager_BadTimeout(t *testing.T) {
	_, err := NewProfileManager(writeINI(t, "[profile slow]\ntimeout = forever\n"))
	assert.ErrorContains(t, err, `profile "slow"`)
}

func TestProfileManager_SetActiveProfile(t *testing.T) {
	m, err := NewProfileManager(writeINI(t, endpointsINI))
	require.NoError(t, err)

	name, err := m.CurrentProfileName()
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, name)

	require.NoError(t, m.SetActiveProfile("mirror"))
	name, _ = m.CurrentProfileName()
	assert.Equal(t, "mirror", name)

	assert.Error(t, m.SetActiveProfile("missing"))
}

func TestProfileManager_GetProfileReturnsCopy(t *testing.T) {
	m, err := NewProfileManager(writeINI(t, endpointsINI))
	require.NoError(t, err)

	p, _ := m.GetProfile("mirror")
	p.Headers["Authorization"] = "tampered"

	again, _ := m.GetProfile("mirror")
	assert.Equal(t, "Bearer xyz", again.Headers["Authorization"])
}
