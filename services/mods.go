package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OgGhostJelly/ogj-libium/util"
)

var (
	ErrModAlreadyAdded = errors.New("mod already added")
	ErrModNotFound     = errors.New("no mod found")
)

// Must call SaveProfile after using! - this allows for batching mod changes into one file write call
func AddMod(profile *util.Profile, mod util.Mod) error {
	for _, existing := range profile.Mods {
		if existing.Identifier == mod.Identifier || strings.EqualFold(existing.Name, mod.Name) {
			return fmt.Errorf("%w: %s", ErrModAlreadyAdded, existing.Name)
		}
	}

	profile.Mods = append(profile.Mods, mod)
	util.SortMods(profile.Mods)
	return nil
}

// RemoveMod drops the mod whose name (ignoring case) or identifier matches.
// Must call SaveProfile after using!
func RemoveMod(profile *util.Profile, nameOrID string) (util.Mod, error) {
	for i, mod := range profile.Mods {
		if strings.EqualFold(mod.Name, nameOrID) || mod.Identifier.String() == nameOrID {
			profile.Mods = append(profile.Mods[:i], profile.Mods[i+1:]...)
			return mod, nil
		}
	}
	return util.Mod{}, fmt.Errorf("%w: %s", ErrModNotFound, nameOrID)
}
