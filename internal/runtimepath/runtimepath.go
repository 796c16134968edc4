package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "clickthrough"

// StateDir returns the directory for persistent clickthrough state such as
// the action log. Priority:
// 1) $XDG_STATE_HOME/clickthrough (if set and absolute)
// 2) ~/.local/state/clickthrough
// 3) ./.clickthrough-state when no home directory is known
func StateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" && filepath.IsAbs(stateHome) {
		return filepath.Join(stateHome, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine state dir: %w", err)
		}
		return filepath.Join(wd, ".clickthrough-state"), nil
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// ActionLogPath returns the default action log location.
func ActionLogPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "actions.log"), nil
}
