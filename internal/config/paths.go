package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains standard filesystem paths for genmodule.
type Paths struct {
	// ConfigFile is the path to the config file (~/.genmodule/config.yaml).
	ConfigFile string

	// HomeDir is the genmodule home directory (~/.genmodule).
	HomeDir string
}

// DefaultPaths returns the default paths for genmodule.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".genmodule")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If GENMODULE_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// DesktopDir returns the current user's Desktop directory: XDG_DESKTOP_DIR
// (or ~/Desktop) on Unix, ~/Desktop on macOS and the Desktop known folder on
// Windows. Returns "" when it cannot be determined.
var DesktopDir = func() string {
	xdg.Reload()
	return xdg.UserDirs.Desktop
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported, return as-is
	return path, nil
}
