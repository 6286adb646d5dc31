package config

import (
	"os"
	"path/filepath"
)

// GetLagreeHome returns LAGREE_HOME or the ~/.lagree default
func GetLagreeHome() string {
	lagreeHome := os.Getenv("LAGREE_HOME")
	if lagreeHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".lagree"
		}
		return filepath.Join(homeDir, ".lagree")
	}
	return ExpandPath(lagreeHome)
}

// GetDBPath returns $LAGREE_HOME/lagree.db
func GetDBPath() string {
	return filepath.Join(GetLagreeHome(), "lagree.db")
}

// GetSettingsPath returns $LAGREE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetLagreeHome(), "settings.json")
}

// GetHostKeyPath returns $LAGREE_HOME/ssh/id_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetLagreeHome(), "ssh", "id_ed25519")
}

// GetAuthorizedKeysPath returns ~/.ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return ExpandPath("~/.ssh/authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
