package commands

import (
	"os"
	"path/filepath"
	"runtime"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tada", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tada/tada.log
// On Linux: $XDG_STATE_HOME/tada/tada.log (defaults to ~/.local/state/tada/tada.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tada", "tada.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tada", "tada.log")
	}

	return filepath.Join(home, ".local", "state", "tada", "tada.log")
}
