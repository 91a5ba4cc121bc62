package config

import (
	"os"
	"path/filepath"

	"github.com/a1s/w1s/internal/config/data"
)

const AppName = "w1s"

// Environment overrides for the application directories.
const (
	EnvConfigDir = "W1S_CONFIG_DIR"
	EnvStateDir  = "W1S_STATE_DIR"
)

var (
	// AppConfigDir is $W1S_CONFIG_DIR or $XDG_CONFIG_HOME/w1s.
	AppConfigDir string

	// AppStateDir is $W1S_STATE_DIR or $XDG_STATE_HOME/w1s.
	AppStateDir string

	// AppConfigFile is <config dir>/w1s.yaml.
	AppConfigFile string

	// AppEndpointsFile is <config dir>/endpoints.ini.
	AppEndpointsFile string

	// AppLogFile is <state dir>/w1s.log.
	AppLogFile string
)

// InitLocs resolves and creates the application directories.
func InitLocs() error {
	home := userHomeDir()
	AppConfigDir = appDir(EnvConfigDir, "XDG_CONFIG_HOME", home, ".config")
	AppStateDir = appDir(EnvStateDir, "XDG_STATE_HOME", home, ".local", "state")

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppEndpointsFile = filepath.Join(AppConfigDir, "endpoints.ini")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	for _, dir := range []string{AppConfigDir, AppStateDir} {
		if _, err := data.EnsureDirPath(dir, data.DirMode); err != nil {
			return err
		}
	}

	return nil
}

// appDir prefers the application override, then the XDG base directory,
// then the home fallback.
func appDir(override, xdg, home string, fallback ...string) string {
	if dir := os.Getenv(override); dir != "" {
		return dir
	}
	base := os.Getenv(xdg)
	if base == "" {
		base = filepath.Join(append([]string{home}, fallback...)...)
	}

	return filepath.Join(base, AppName)
}

// InitLogLoc creates the directory of the log file.
func InitLogLoc(path string) error {
	return data.EnsureFullPath(path, data.DirMode)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.TempDir()
}
