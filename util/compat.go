package util

// BackwardsCompat upgrades a profile read from an older file layout to the
// current one. It is a no-op on a profile that is already current.
func (p *Profile) BackwardsCompat() {
	if p.GameVersion != "" || p.ModLoader != "" {
		var legacy []Filter
		if p.ModLoader != "" {
			legacy = append(legacy, ModLoaderFilter(ModLoaderPrefer, p.ModLoader.Compatible()...))
		}
		if p.GameVersion != "" {
			legacy = append(legacy, NewFilter(GameVersionStrict, p.GameVersion))
		}
		p.Filters = append(legacy, p.Filters...)
		p.GameVersion = ""
		p.ModLoader = ""
	}

	if p.Filters == nil {
		p.Filters = []Filter{}
	}
	if p.Mods == nil {
		p.Mods = []Mod{}
	}

	for i := range p.Mods {
		mod := &p.Mods[i]
		skipVersion := mod.CheckGameVersion != nil && !*mod.CheckGameVersion
		skipLoader := mod.CheckModLoader != nil && !*mod.CheckModLoader
		if skipVersion || skipLoader {
			filters := []Filter{}
			for _, f := range p.Filters {
				if (skipVersion && f.IsGameVersion()) || (skipLoader && f.IsModLoader()) {
					continue
				}
				filters = append(filters, f)
			}
			mod.OverrideFilters = true
			mod.Filters = filters
		}
		mod.CheckGameVersion = nil
		mod.CheckModLoader = nil
	}
}
