package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OgGhostJelly/ogj-libium/util"
	"github.com/OgGhostJelly/ogj-libium/util/fileutils"
)

var (
	ErrProfileNotFound = errors.New("failed to find profile")
	ErrProfileExists   = errors.New("profile already exists")
	ErrNoProfiles      = errors.New("no profiles have been created")
	ErrInvalidName     = errors.New("invalid profile name")
)

type ProfileOptions struct {
	GameVersion string
	ModLoader   util.ModLoader
	OutputDir   string
	// Path overrides where the profile file is written.
	Path string
}

// CreateProfile writes a new empty profile, registers it in the config at
// configPath and makes it the active profile.
func CreateProfile(configPath string, name string, opts ProfileOptions) (util.ProfileItem, error) {
	if err := validateName(name); err != nil {
		return util.ProfileItem{}, err
	}

	config, err := fileutils.ReadConfig(configPath)
	if err != nil {
		return util.ProfileItem{}, err
	}

	if _, i := findProfile(config, name); i >= 0 {
		return util.ProfileItem{}, fmt.Errorf("%w: %s", ErrProfileExists, name)
	}

	path := opts.Path
	if path == "" {
		path = fileutils.ProfilePath(configPath, name)
	}
	existing, err := fileutils.ReadProfile(path)
	if err != nil {
		return util.ProfileItem{}, err
	}
	if existing != nil {
		return util.ProfileItem{}, fmt.Errorf("%w: %s", ErrProfileExists, path)
	}

	profile := util.Profile{
		Name:      name,
		OutputDir: opts.OutputDir,
		Filters:   []util.Filter{},
		Mods:      []util.Mod{},
	}
	if opts.ModLoader != "" {
		profile.Filters = append(profile.Filters, util.ModLoaderFilter(util.ModLoaderPrefer, opts.ModLoader.Compatible()...))
	}
	if opts.GameVersion != "" {
		profile.Filters = append(profile.Filters, util.NewFilter(util.GameVersionStrict, opts.GameVersion))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return util.ProfileItem{}, err
	}
	if err := fileutils.WriteProfile(path, &profile); err != nil {
		return util.ProfileItem{}, err
	}

	item := util.ProfileItem{Path: path, Name: name}
	config.Profiles = append(config.Profiles, item)
	config.ActiveProfile = len(config.Profiles) - 1
	return item, fileutils.WriteConfig(configPath, &config)
}

func GetProfile(configPath string, name string) (util.ProfileItem, error) {
	config, err := fileutils.ReadConfig(configPath)
	if err != nil {
		return util.ProfileItem{}, err
	}

	item, i := findProfile(config, name)
	if i < 0 {
		return util.ProfileItem{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return item, nil
}

// ListProfiles returns the registered profiles and the index of the active one.
func ListProfiles(configPath string) ([]util.ProfileItem, int, error) {
	config, err := fileutils.ReadConfig(configPath)
	if err != nil {
		return nil, 0, err
	}
	return config.Profiles, activeIndex(config), nil
}

func SetActiveProfile(configPath string, name string) error {
	config, err := fileutils.ReadConfig(configPath)
	if err != nil {
		return err
	}

	_, i := findProfile(config, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	config.ActiveProfile = i
	return fileutils.WriteConfig(configPath, &config)
}

// DeleteProfile unregisters a profile. Its file is left on disk.
func DeleteProfile(configPath string, name string) (util.ProfileItem, error) {
	config, err := fileutils.ReadConfig(configPath)
	if err != nil {
		return util.ProfileItem{}, err
	}

	item, i := findProfile(config, name)
	if i < 0 {
		return util.ProfileItem{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	config.Profiles = append(config.Profiles[:i], config.Profiles[i+1:]...)
	if config.ActiveProfile > i || config.ActiveProfile >= len(config.Profiles) {
		config.ActiveProfile--
	}
	if config.ActiveProfile < 0 {
		config.ActiveProfile = 0
	}
	return item, fileutils.WriteConfig(configPath, &config)
}

// ActiveProfile loads the profile currently selected in the config.
func ActiveProfile(configPath string) (util.ProfileItem, *util.Profile, error) {
	config, err := fileutils.ReadConfig(configPath)
	if err != nil {
		return util.ProfileItem{}, nil, err
	}
	if len(config.Profiles) == 0 {
		return util.ProfileItem{}, nil, ErrNoProfiles
	}

	item := config.Profiles[activeIndex(config)]
	profile, err := fileutils.ReadProfile(item.Path)
	if err != nil {
		return item, nil, err
	}
	if profile == nil {
		return item, nil, fmt.Errorf("%w: %s has no file at %s", ErrProfileNotFound, item.Name, item.Path)
	}
	return item, profile, nil
}

func SaveProfile(item util.ProfileItem, profile *util.Profile) error {
	return fileutils.WriteProfile(item.Path, profile)
}

// validateName keeps names usable as a file name inside the profiles directory.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func findProfile(config util.Config, name string) (util.ProfileItem, int) {
	for i, item := range config.Profiles {
		if strings.EqualFold(item.Name, name) {
			return item, i
		}
	}
	return util.ProfileItem{}, -1
}

// activeIndex clamps a hand edited active_profile into range.
func activeIndex(config util.Config) int {
	if config.ActiveProfile < 0 || config.ActiveProfile >= len(config.Profiles) {
		return 0
	}
	return config.ActiveProfile
}
