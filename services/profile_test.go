package services

import (
	"path/filepath"
	"testing"

	"github.com/OgGhostJelly/ogj-libium/util"
	"github.com/OgGhostJelly/ogj-libium/util/fileutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "ferium", "config.json")
}

func TestCreateProfile(t *testing.T) {
	configPath := newConfigPath(t)

	item, err := CreateProfile(configPath, "Survival", ProfileOptions{
		GameVersion: "1.20.1",
		ModLoader:   util.Quilt,
		OutputDir:   "/mods",
	})
	require.NoError(t, err)
	assert.Equal(t, fileutils.ProfilePath(configPath, "Survival"), item.Path)

	config, err := fileutils.ReadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, []util.ProfileItem{item}, config.Profiles)
	assert.Equal(t, 0, config.ActiveProfile)

	profile, err := fileutils.ReadProfile(item.Path)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, util.Profile{
		Name:      "Survival",
		OutputDir: "/mods",
		Filters: []util.Filter{
			util.ModLoaderFilter(util.ModLoaderPrefer, util.Quilt, util.Fabric),
			util.NewFilter(util.GameVersionStrict, "1.20.1"),
		},
		Mods: []util.Mod{},
	}, *profile)
}

func TestCreateProfileSwitchesToNewest(t *testing.T) {
	configPath := newConfigPath(t)
	_, err := CreateProfile(configPath, "One", ProfileOptions{})
	require.NoError(t, err)
	_, err = CreateProfile(configPath, "Two", ProfileOptions{})
	require.NoError(t, err)

	item, _, err := ActiveProfile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Two", item.Name)
}

func TestCreateProfileDuplicate(t *testing.T) {
	configPath := newConfigPath(t)
	_, err := CreateProfile(configPath, "Survival", ProfileOptions{})
	require.NoError(t, err)

	_, err = CreateProfile(configPath, "survival", ProfileOptions{})
	assert.ErrorIs(t, err, ErrProfileExists)

	_, err = CreateProfile(configPath, "Other", ProfileOptions{Path: fileutils.ProfilePath(configPath, "Survival")})
	assert.ErrorIs(t, err, ErrProfileExists)

	profiles, _, err := ListProfiles(configPath)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestCreateProfileCustomPath(t *testing.T) {
	configPath := newConfigPath(t)
	path := filepath.Join(t.TempDir(), "elsewhere", "modded.json")

	item, err := CreateProfile(configPath, "Modded", ProfileOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, item.Path)
	assert.FileExists(t, path)
}

func TestSetActiveProfile(t *testing.T) {
	configPath := newConfigPath(t)
	for _, name := range []string{"One", "Two", "Three"} {
		_, err := CreateProfile(configPath, name, ProfileOptions{})
		require.NoError(t, err)
	}

	require.NoError(t, SetActiveProfile(configPath, "one"))
	profiles, active, err := ListProfiles(configPath)
	require.NoError(t, err)
	assert.Equal(t, "One", profiles[active].Name)

	assert.ErrorIs(t, SetActiveProfile(configPath, "Four"), ErrProfileNotFound)
}

func TestGetProfile(t *testing.T) {
	configPath := newConfigPath(t)
	created, err := CreateProfile(configPath, "Survival", ProfileOptions{})
	require.NoError(t, err)

	item, err := GetProfile(configPath, "SURVIVAL")
	require.NoError(t, err)
	assert.Equal(t, created, item)

	_, err = GetProfile(configPath, "Creative")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteProfile(t *testing.T) {
	configPath := newConfigPath(t)
	for _, name := range []string{"One", "Two", "Three"} {
		_, err := CreateProfile(configPath, name, ProfileOptions{})
		require.NoError(t, err)
	}

	// Three is active; removing One shifts it down.
	removed, err := DeleteProfile(configPath, "One")
	require.NoError(t, err)
	assert.FileExists(t, removed.Path)
	item, _, err := ActiveProfile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Three", item.Name)

	// Removing the active last profile falls back to the previous one.
	_, err = DeleteProfile(configPath, "Three")
	require.NoError(t, err)
	item, _, err = ActiveProfile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Two", item.Name)

	_, err = DeleteProfile(configPath, "Two")
	require.NoError(t, err)
	config, err := fileutils.ReadConfig(configPath)
	require.NoError(t, err)
	assert.Empty(t, config.Profiles)
	assert.Equal(t, 0, config.ActiveProfile)

	_, err = DeleteProfile(configPath, "Two")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestActiveProfileErrors(t *testing.T) {
	configPath := newConfigPath(t)
	_, _, err := ActiveProfile(configPath)
	assert.ErrorIs(t, err, ErrNoProfiles)

	config := util.DefaultConfig()
	config.Profiles = []util.ProfileItem{{Path: filepath.Join(t.TempDir(), "gone.json"), Name: "Gone"}}
	config.ActiveProfile = 7
	require.NoError(t, fileutils.WriteConfig(configPath, &config))

	item, profile, err := ActiveProfile(configPath)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, profile)
	assert.Equal(t, "Gone", item.Name)
}

func TestCreateProfileRejectsPathNames(t *testing.T) {
	configPath := newConfigPath(t)
	for _, name := range []string{"../../x", "a/b", `a\b`, "..", "", "  "} {
		_, err := CreateProfile(configPath, name, ProfileOptions{})
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}

	profiles, _, err := ListProfiles(configPath)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NoDirExists(t, filepath.Join(filepath.Dir(configPath), "profiles"))
}
