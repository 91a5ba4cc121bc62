package slogs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/a1s/w1s/internal/slogs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w1s.log")
	l, err := slogs.New("warn", path)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"shown"`)
	assert.NotContains(t, string(raw), "hidden")
}

func TestNewBadLevel(t *testing.T) {
	_, err := slogs.New("loud", filepath.Join(t.TempDir(), "w1s.log"))
	assert.Error(t, err)
}

func TestNewNoPath(t *testing.T) {
	l, err := slogs.New("info", "")
	require.NoError(t, err)
	assert.NotNil(t, l)
}
