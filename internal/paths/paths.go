// Package paths resolves the OS-appropriate locations for the
// application's config file, log file and history database.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "cliform"

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where application-managed data (like the history database) lives.
//   - macOS: ~/Library/Application Support/cliform
//   - Linux: $XDG_DATA_HOME/cliform or ~/.local/share/cliform
//   - Windows: %LOCALAPPDATA%\cliform
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		// Linux/Unix: $XDG_DATA_HOME or ~/.local/share
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// HistoryDBPath returns the path to the invocation history database.
//   - macOS: ~/Library/Application Support/cliform/history.db
//   - Linux: $XDG_DATA_HOME/cliform/history.db or ~/.local/share/cliform/history.db
//   - Windows: %LOCALAPPDATA%\cliform\history.db
func HistoryDBPath() string {
	dir := AppLocalDataDir()
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "history.db")
}

func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".cliformrc"), nil
}

// LogFilePath returns the path to the application log file.
// Logs are stored in the application data directory:
//   - macOS: ~/Library/Application Support/cliform/cliform.log
//   - Linux: $XDG_CONFIG_HOME/cliform/cliform.log or ~/.config/cliform/cliform.log
//   - Windows: %AppData%\cliform\cliform.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "cliform.log")
}
