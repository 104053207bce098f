package fileutils

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/OgGhostJelly/ogj-libium/util"
	"github.com/pterm/pterm"
)

// ReadConfig reads the config at path. A missing config is created, along
// with its parent directories, holding the default config.
func ReadConfig(path string) (util.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return util.Config{}, err
		}
		config := util.DefaultConfig()
		if err := WriteConfig(path, &config); err != nil {
			return util.Config{}, err
		}
		pterm.Debug.Println("Created default config at " + path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return util.Config{}, err
	}

	var config util.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return util.Config{}, err
	}
	return config, nil
}

// ReadProfile reads the profile at path. It returns nil and no error when
// there is no file at path.
func ReadProfile(path string) (*util.Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile util.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}

	profile.BackwardsCompat()
	util.SortMods(profile.Mods)
	return &profile, nil
}

// WriteConfig replaces the file at path with the pretty printed config.
// The parent directory must exist.
func WriteConfig(path string, config *util.Config) error {
	return writeJSON(path, config)
}

// WriteProfile replaces the file at path with the pretty printed profile.
// The parent directory must exist.
func WriteProfile(path string, profile *util.Profile) error {
	return writeJSON(path, profile)
}

// The file is truncated before writing, so a crash part way through can
// leave it corrupt.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
