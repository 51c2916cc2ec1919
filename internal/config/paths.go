package config

import (
	"os"
	"path/filepath"
)

// xdgPath returns name under the mindset directory of the XDG base directory
// named by env, falling back to fallback under the home directory.
func xdgPath(env, fallback, name string) string {
	dir := os.Getenv(env)
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, fallback)
		} else {
			dir = "."
		}
	}
	return filepath.Join(dir, "mindset", name)
}

func configFilePath() string {
	return xdgPath("XDG_CONFIG_HOME", ".config", "config.json")
}

func secretsFilePath() string {
	return xdgPath("XDG_DATA_HOME", filepath.Join(".local", "share"), "secrets.json")
}

// writePrivate writes data to path, creating parent directories readable
// only by the current user.
func writePrivate(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
