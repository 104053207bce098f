package fileutils

import (
	"os"
	"path/filepath"
	"sync"
)

var defaultConfigPath = sync.OnceValues(func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ferium", "config.json"), nil
})

// DefaultConfigPath returns <home>/.config/ferium/config.json. The home
// directory is looked up on the first call only.
func DefaultConfigPath() (string, error) {
	return defaultConfigPath()
}

// ProfilePath is where a new profile called name is stored, next to the
// config file at configPath.
func ProfilePath(configPath string, name string) string {
	return filepath.Join(filepath.Dir(configPath), "profiles", name+".json")
}
