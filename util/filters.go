package util

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ModLoader string

const (
	Quilt    ModLoader = "Quilt"
	Fabric   ModLoader = "Fabric"
	Forge    ModLoader = "Forge"
	NeoForge ModLoader = "NeoForge"
)

var modLoaders = []ModLoader{Quilt, Fabric, Forge, NeoForge}

func ParseModLoader(s string) (ModLoader, error) {
	for _, loader := range modLoaders {
		if strings.EqualFold(string(loader), s) {
			return loader, nil
		}
	}
	return "", fmt.Errorf("unknown mod loader %q", s)
}

// UnmarshalJSON accepts any casing of a known loader and stores its
// canonical name. An empty string decodes to no loader.
func (l *ModLoader) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = ""
		return nil
	}
	loader, err := ParseModLoader(s)
	if err != nil {
		return err
	}
	*l = loader
	return nil
}

// Compatible lists the loaders whose mods run on l, most preferred first.
// Quilt can load Fabric mods.
func (l ModLoader) Compatible() []ModLoader {
	if l == Quilt {
		return []ModLoader{Quilt, Fabric}
	}
	return []ModLoader{l}
}

type FilterKind string

const (
	ModLoaderPrefer   FilterKind = "ModLoaderPrefer"
	ModLoaderAny      FilterKind = "ModLoaderAny"
	GameVersionStrict FilterKind = "GameVersionStrict"
	GameVersionMinor  FilterKind = "GameVersionMinor"
	ReleaseChannel    FilterKind = "ReleaseChannel"
	Filename          FilterKind = "Filename"
	Title             FilterKind = "Title"
	Description       FilterKind = "Description"
)

// Release channels accepted by the ReleaseChannel filter.
const (
	ChannelRelease = "Release"
	ChannelBeta    = "Beta"
	ChannelAlpha   = "Alpha"
)

// Filter narrows which files of a mod may be picked. List kinds keep every
// value, the others keep exactly one.
type Filter struct {
	Kind   FilterKind
	Values []string
}

func NewFilter(kind FilterKind, values ...string) Filter {
	return Filter{Kind: kind, Values: values}
}

func ModLoaderFilter(kind FilterKind, loaders ...ModLoader) Filter {
	values := make([]string, len(loaders))
	for i, loader := range loaders {
		values[i] = string(loader)
	}
	return Filter{Kind: kind, Values: values}
}

func (f Filter) IsList() bool {
	switch f.Kind {
	case ModLoaderPrefer, ModLoaderAny, GameVersionStrict, GameVersionMinor:
		return true
	}
	return false
}

func (f Filter) IsGameVersion() bool {
	return f.Kind == GameVersionStrict || f.Kind == GameVersionMinor
}

func (f Filter) IsModLoader() bool {
	return f.Kind == ModLoaderPrefer || f.Kind == ModLoaderAny
}

func (f Filter) String() string {
	return string(f.Kind) + "(" + strings.Join(f.Values, ", ") + ")"
}

func (f Filter) MarshalJSON() ([]byte, error) {
	if !knownFilter(f.Kind) {
		return nil, fmt.Errorf("unknown filter kind %q", f.Kind)
	}
	if f.IsList() {
		values := f.Values
		if values == nil {
			values = []string{}
		}
		return marshalTagged(string(f.Kind), values)
	}
	if len(f.Values) != 1 {
		return nil, fmt.Errorf("filter %s takes exactly one value, got %d", f.Kind, len(f.Values))
	}
	return marshalTagged(string(f.Kind), f.Values[0])
}

func (f *Filter) UnmarshalJSON(data []byte) error {
	tag, raw, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	out := Filter{Kind: FilterKind(tag)}
	if !knownFilter(out.Kind) {
		return fmt.Errorf("unknown filter kind %q", tag)
	}
	if out.IsList() {
		if err := json.Unmarshal(raw, &out.Values); err != nil {
			return err
		}
		if out.IsModLoader() {
			for i, v := range out.Values {
				loader, err := ParseModLoader(v)
				if err != nil {
					return err
				}
				out.Values[i] = string(loader)
			}
		}
	} else {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		if out.Kind == ReleaseChannel && value != ChannelRelease && value != ChannelBeta && value != ChannelAlpha {
			return fmt.Errorf("unknown release channel %q", value)
		}
		out.Values = []string{value}
	}
	*f = out
	return nil
}

func knownFilter(kind FilterKind) bool {
	switch kind {
	case ModLoaderPrefer, ModLoaderAny, GameVersionStrict, GameVersionMinor,
		ReleaseChannel, Filename, Title, Description:
		return true
	}
	return false
}
