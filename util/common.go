package util

import (
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/mod/semver"
)

func Fatal(err error) {
	if err != nil {
		pterm.Fatal.Println(err)
	}
}

// SortMods orders mods by lowercase name. Equal names keep their order.
func SortMods(mods []Mod) {
	sort.SliceStable(mods, func(i, j int) bool {
		return strings.ToLower(mods[i].Name) < strings.ToLower(mods[j].Name)
	})
}

// IsReleaseVersion reports whether a Minecraft version is a numbered release
// such as 1.20.1, as opposed to a snapshot or pre-release.
func IsReleaseVersion(version string) bool {
	v := "v" + version
	return semver.IsValid(v) && semver.Prerelease(v) == "" && semver.Build(v) == ""
}

// SortGameVersions orders versions newest first. Releases come before
// anything semver cannot read, which keep their relative order.
func SortGameVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		a, b := "v"+versions[i], "v"+versions[j]
		switch {
		case semver.IsValid(a) && semver.IsValid(b):
			return semver.Compare(a, b) > 0
		case semver.IsValid(a):
			return true
		}
		return false
	})
}
