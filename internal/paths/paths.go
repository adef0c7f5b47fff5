package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "monsterdex"

// GetConfigDir returns the directory holding config.toml
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// GetDataDir returns the directory for user supplied datasets and icons
func GetDataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// GetIconsDir returns the default directory icon art is read from
func GetIconsDir() string {
	return filepath.Join(GetDataDir(), "icons")
}

// GetStateDir returns the state directory for logs and the imported database
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// GetLogPath returns the default log file path
func GetLogPath() string {
	return filepath.Join(GetStateDir(), appName+".log")
}

// GetDatabasePath returns the default SQLite dataset path
func GetDatabasePath() string {
	return filepath.Join(GetDataDir(), "monsters.db")
}

// EnsureDir creates dir (and parents) with user-only permissions
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureDataDir creates the data directory if it doesn't exist
func EnsureDataDir() (string, error) {
	return EnsureDir(GetDataDir())
}
