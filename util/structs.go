package util

// Config is the global settings document. Field order is the on-disk key order.
type Config struct {
	ActiveProfile int           `json:"active_profile"`
	Profiles      []ProfileItem `json:"profiles"`
	ActiveModpack int           `json:"active_modpack"`
	Modpacks      []Modpack     `json:"modpacks"`
}

func DefaultConfig() Config {
	return Config{
		Profiles: []ProfileItem{},
		Modpacks: []Modpack{},
	}
}

// ProfileItem points at a profile document stored in its own file.
type ProfileItem struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

type Modpack struct {
	Name             string            `json:"name"`
	OutputDir        string            `json:"output_dir"`
	InstallOverrides bool              `json:"install_overrides"`
	Identifier       ModpackIdentifier `json:"identifier"`
}

type Profile struct {
	Name      string   `json:"name"`
	OutputDir string   `json:"output_dir"`
	Filters   []Filter `json:"filters"`
	Mods      []Mod    `json:"mods"`

	// Older profiles stored a single game version and loader instead of filters.
	GameVersion string    `json:"game_version,omitempty"`
	ModLoader   ModLoader `json:"mod_loader,omitempty"`
}

type Mod struct {
	Name            string        `json:"name"`
	Identifier      ModIdentifier `json:"identifier"`
	Slug            string        `json:"slug,omitempty"`
	OverrideFilters bool          `json:"override_filters,omitempty"`
	Filters         []Filter      `json:"filters,omitempty"`

	CheckGameVersion *bool `json:"check_game_version,omitempty"`
	CheckModLoader   *bool `json:"check_mod_loader,omitempty"`
}
