package fileutils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/OgGhostJelly/ogj-libium/util"
	"github.com/buger/jsonparser"
	"github.com/tidwall/gjson"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrOutOfRange  = errors.New("index out of range")
)

// GetConfigValue looks up a dotted key path such as "profiles.0.name" in the
// config at path and returns the raw JSON found there.
func GetConfigValue(path string, key string) (string, error) {
	config, err := ReadConfig(path)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(config)
	if err != nil {
		return "", err
	}

	result := gjson.GetBytes(data, key)
	if !result.Exists() {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return result.Raw, nil
}

// SetConfigValue stores the JSON text value under a dotted key path in the
// config at path. The edited document must still decode as a config before
// it is written back.
func SetConfigValue(path string, key string, value string) (util.Config, error) {
	config, err := ReadConfig(path)
	if err != nil {
		return util.Config{}, err
	}

	data, err := json.Marshal(config)
	if err != nil {
		return util.Config{}, err
	}

	if !json.Valid([]byte(value)) {
		return util.Config{}, fmt.Errorf("value for %s is not valid JSON: %s", key, value)
	}

	if err := checkIndices(data, key); err != nil {
		return util.Config{}, err
	}

	edited, err := jsonparser.Set(data, []byte(value), parserKeys(key)...)
	if err != nil {
		return util.Config{}, err
	}

	var updated util.Config
	decoder := json.NewDecoder(bytes.NewReader(edited))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updated); err != nil {
		return util.Config{}, fmt.Errorf("setting %s: %w", key, err)
	}
	if err := checkActive(updated); err != nil {
		return util.Config{}, err
	}

	if err := WriteConfig(path, &updated); err != nil {
		return util.Config{}, err
	}
	return updated, nil
}

// parserKeys turns "profiles.0.name" into the jsonparser form "profiles", "[0]", "name".
func parserKeys(key string) []string {
	parts := strings.Split(key, ".")
	for i, part := range parts {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			parts[i] = "[" + part + "]"
		}
	}
	return parts
}

// checkIndices makes sure every array index in key names an existing element,
// since jsonparser.Set appends when the index is past the end.
func checkIndices(data []byte, key string) error {
	parts := strings.Split(key, ".")
	for i, part := range parts {
		if part == "" || strings.Trim(part, "0123456789") != "" {
			continue
		}
		prefix := strings.Join(parts[:i], ".")
		array := gjson.GetBytes(data, prefix)
		if prefix == "" || !array.IsArray() {
			return fmt.Errorf("%w: %s is not a list", ErrKeyNotFound, prefix)
		}
		index, err := strconv.Atoi(part)
		if err != nil {
			return err
		}
		if n := len(array.Array()); index >= n {
			return fmt.Errorf("%w: %s has %d entries, no index %d", ErrOutOfRange, prefix, n, index)
		}
	}
	return nil
}

// checkActive rejects active indices that point outside their lists. Zero is
// always allowed so an empty list stays valid.
func checkActive(config util.Config) error {
	if config.ActiveProfile != 0 && (config.ActiveProfile < 0 || config.ActiveProfile >= len(config.Profiles)) {
		return fmt.Errorf("%w: active_profile %d with %d profiles", ErrOutOfRange, config.ActiveProfile, len(config.Profiles))
	}
	if config.ActiveModpack != 0 && (config.ActiveModpack < 0 || config.ActiveModpack >= len(config.Modpacks)) {
		return fmt.Errorf("%w: active_modpack %d with %d modpacks", ErrOutOfRange, config.ActiveModpack, len(config.Modpacks))
	}
	return nil
}
