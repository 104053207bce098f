package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OgGhostJelly/ogj-libium/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	value, err := GetConfigValue(path, "active_profile")
	require.NoError(t, err)
	assert.Equal(t, "0", value)

	value, err = GetConfigValue(path, "profiles")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	_, err = GetConfigValue(path, "profiles.0.name")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSetConfigValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := SetConfigValue(path, "profiles", `[{"path": "/p/one.json", "name": "One"}]`)
	require.NoError(t, err)
	assert.Equal(t, []util.ProfileItem{{Path: "/p/one.json", Name: "One"}}, config.Profiles)

	_, err = SetConfigValue(path, "profiles.0.name", `"Uno"`)
	require.NoError(t, err)

	value, err := GetConfigValue(path, "profiles.0.name")
	require.NoError(t, err)
	assert.Equal(t, `"Uno"`, value)

	read, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Uno", read.Profiles[0].Name)
	assert.Equal(t, "/p/one.json", read.Profiles[0].Path)
}

func TestSetConfigValueRejectsBadEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_, err := ReadConfig(path)
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = SetConfigValue(path, "active_profil", "1")
	assert.Error(t, err)
	_, err = SetConfigValue(path, "active_profile", `"one"`)
	assert.Error(t, err)
	_, err = SetConfigValue(path, "active_profile", "{")
	assert.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestParserKeys(t *testing.T) {
	assert.Equal(t, []string{"profiles", "[0]", "name"}, parserKeys("profiles.0.name"))
	assert.Equal(t, []string{"active_profile"}, parserKeys("active_profile"))
}

func TestSetConfigValueIndexPastEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := SetConfigValue(path, "profiles.3.name", `"x"`)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = SetConfigValue(path, "profiles", `[{"path": "/p/one.json", "name": "One"}]`)
	require.NoError(t, err)
	_, err = SetConfigValue(path, "profiles.1.name", `"Two"`)
	assert.ErrorIs(t, err, ErrOutOfRange)

	read, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []util.ProfileItem{{Path: "/p/one.json", Name: "One"}}, read.Profiles)
}

func TestSetConfigValueActiveIndexRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := SetConfigValue(path, "active_profile", "-5")
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = SetConfigValue(path, "active_modpack", "1")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = SetConfigValue(path, "profiles", `[{"path": "/a.json", "name": "A"}, {"path": "/b.json", "name": "B"}]`)
	require.NoError(t, err)
	config, err := SetConfigValue(path, "active_profile", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, config.ActiveProfile)
	_, err = SetConfigValue(path, "active_profile", "2")
	assert.ErrorIs(t, err, ErrOutOfRange)

	read, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, read.ActiveProfile)
	assert.Equal(t, 0, read.ActiveModpack)
}
