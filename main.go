package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/OgGhostJelly/ogj-libium/services"
	"github.com/OgGhostJelly/ogj-libium/util"
	"github.com/OgGhostJelly/ogj-libium/util/fileutils"
	"github.com/jedib0t/go-pretty/text"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ferium",
		Usage: "Manage your mod profiles with ease",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
				EnvVars: []string{"FERIUM_CONFIG_FILE"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print debug messages",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				pterm.EnableDebugMessages()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "profile",
				Usage: "Create, switch and inspect profiles",
				Subcommands: []*cli.Command{
					{
						Name:      "create",
						Usage:     "Create a new profile and switch to it",
						ArgsUsage: "NAME",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "game-version", Aliases: []string{"v"}, Usage: "only accept files for this game version"},
							&cli.StringFlag{Name: "mod-loader", Aliases: []string{"l"}, Usage: "quilt, fabric, forge or neoforge"},
							&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "directory mods are downloaded to"},
							&cli.StringFlag{Name: "path", Usage: "where to store the profile file"},
						},
						Action: createProfile,
					},
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "List all profiles",
						Action:  listProfiles,
					},
					{
						Name:      "switch",
						Usage:     "Make another profile the active one",
						ArgsUsage: "NAME",
						Action: func(c *cli.Context) error {
							name := c.Args().Get(0)
							if err := services.SetActiveProfile(configPath(c), name); err != nil {
								return err
							}
							pterm.Success.Println("Now modifying " + name)
							return nil
						},
					},
					{
						Name:      "remove",
						Aliases:   []string{"rm"},
						Usage:     "Forget a profile, leaving its file in place",
						ArgsUsage: "NAME",
						Action: func(c *cli.Context) error {
							item, err := services.DeleteProfile(configPath(c), c.Args().Get(0))
							if errors.Is(err, services.ErrProfileNotFound) {
								pterm.Warning.Println("Failed to find a profile with that name")
								return nil
							}
							if err != nil {
								return err
							}
							pterm.Success.Println("Removed " + item.Name + " (" + item.Path + " was kept)")
							return nil
						},
					},
					{
						Name:   "info",
						Usage:  "Show the active profile",
						Action: profileInfo,
					},
				},
			},
			{
				Name:      "add",
				Usage:     "Add mods to the active profile",
				ArgsUsage: "modrinth:ID | curseforge:ID | github:OWNER/REPO ...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "display name, defaults to the identifier"},
				},
				Action: addMods,
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "Remove mods from the active profile",
				ArgsUsage: "NAME ...",
				Action:    removeMods,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List mods in the active profile",
				Action:  listMods,
			},
			{
				Name:  "config",
				Usage: "Inspect or edit the config file",
				Subcommands: []*cli.Command{
					{
						Name:  "path",
						Usage: "Print the config file path",
						Action: func(c *cli.Context) error {
							fmt.Println(configPath(c))
							return nil
						},
					},
					{
						Name:      "get",
						Usage:     "Print the JSON value at a key path such as profiles.0.name",
						ArgsUsage: "KEY",
						Action: func(c *cli.Context) error {
							value, err := fileutils.GetConfigValue(configPath(c), c.Args().Get(0))
							if err != nil {
								return err
							}
							fmt.Println(value)
							return nil
						},
					},
					{
						Name:      "set",
						Usage:     "Set the JSON value at a key path",
						ArgsUsage: "KEY VALUE",
						Action: func(c *cli.Context) error {
							args := c.Args()
							if _, err := fileutils.SetConfigValue(configPath(c), args.Get(0), args.Get(1)); err != nil {
								return err
							}
							pterm.Success.Println("Set " + args.Get(0))
							return nil
						},
					},
				},
			},
			{
				Name:  "token",
				Usage: "Manage API tokens kept in the system keyring",
				Subcommands: []*cli.Command{
					{
						Name:      "set",
						Usage:     "Store a token",
						ArgsUsage: "github|curseforge TOKEN",
						Action: func(c *cli.Context) error {
							args := c.Args()
							if err := fileutils.SetToken(args.Get(0), args.Get(1)); err != nil {
								return err
							}
							pterm.Success.Println("Saved " + args.Get(0) + " token")
							return nil
						},
					},
					{
						Name:      "check",
						Usage:     "Report whether a token is stored",
						ArgsUsage: "github|curseforge",
						Action: func(c *cli.Context) error {
							token, err := fileutils.GetToken(c.Args().Get(0))
							if err != nil {
								return err
							}
							if token == "" {
								pterm.Info.Println("No " + c.Args().Get(0) + " token stored")
							} else {
								pterm.Info.Println("A " + c.Args().Get(0) + " token is stored")
							}
							return nil
						},
					},
					{
						Name:      "remove",
						Usage:     "Delete a stored token",
						ArgsUsage: "github|curseforge",
						Action: func(c *cli.Context) error {
							if err := fileutils.DeleteToken(c.Args().Get(0)); err != nil {
								return err
							}
							pterm.Success.Println("Removed " + c.Args().Get(0) + " token")
							return nil
						},
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func configPath(c *cli.Context) string {
	if path := c.String("config"); path != "" {
		return path
	}
	path, err := fileutils.DefaultConfigPath()
	util.Fatal(err)
	return path
}

func createProfile(c *cli.Context) error {
	name := c.Args().Get(0)
	if name == "" {
		return errors.New("a profile name is required")
	}

	opts := services.ProfileOptions{
		GameVersion: c.String("game-version"),
		OutputDir:   c.String("output-dir"),
		Path:        c.String("path"),
	}
	if loader := c.String("mod-loader"); loader != "" {
		modLoader, err := util.ParseModLoader(loader)
		if err != nil {
			return err
		}
		opts.ModLoader = modLoader
	}
	for _, p := range []*string{&opts.OutputDir, &opts.Path} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return err
		}
		*p = abs
	}
	if opts.GameVersion != "" && !util.IsReleaseVersion(opts.GameVersion) {
		pterm.Warning.Println(opts.GameVersion + " is not a release version, few mods may support it")
	}

	item, err := services.CreateProfile(configPath(c), name, opts)
	if errors.Is(err, services.ErrProfileExists) {
		pterm.Warning.Println("Profile with that name already exists")
		return nil
	}
	if err != nil {
		return err
	}
	pterm.Success.Println("Created " + item.Name + " at " + item.Path)
	return nil
}

func listProfiles(c *cli.Context) error {
	profiles, active, err := services.ListProfiles(configPath(c))
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		pterm.Info.Println("No profiles yet, create one with `profile create`")
		return nil
	}

	lname := len("NAME:")
	for _, item := range profiles {
		if len(item.Name) > lname {
			lname = len(item.Name)
		}
	}

	fmt.Println()
	fmt.Println("  " + text.AlignDefault.Apply("NAME:", lname+2) + "PATH:")
	for i, item := range profiles {
		marker := "  "
		name := item.Name
		if i == active {
			marker = "* "
			name = text.Bold.Sprint(name)
		}
		fmt.Println(marker + text.AlignDefault.Apply(name, lname+2) + item.Path)
	}
	fmt.Println()
	return nil
}

func profileInfo(c *cli.Context) error {
	item, profile, err := services.ActiveProfile(configPath(c))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(text.Bold.Sprint(profile.Name))
	fmt.Println("  File:       " + item.Path)
	fmt.Println("  Output dir: " + profile.OutputDir)
	fmt.Printf("  Mods:       %d\n", len(profile.Mods))
	for _, filter := range profile.Filters {
		if filter.IsGameVersion() {
			versions := append([]string(nil), filter.Values...)
			util.SortGameVersions(versions)
			filter = util.NewFilter(filter.Kind, versions...)
		}
		fmt.Println("  Filter:     " + filter.String())
	}
	fmt.Println()
	return nil
}

func addMods(c *cli.Context) error {
	item, profile, err := services.ActiveProfile(configPath(c))
	if err != nil {
		return err
	}

	for _, arg := range c.Args().Slice() {
		id, err := util.ParseModIdentifier(arg)
		if err != nil {
			pterm.Warning.Println(err)
			continue
		}

		name := c.String("name")
		if name == "" || c.NArg() > 1 {
			name = arg
		}
		mod := util.Mod{Name: name, Identifier: id}
		if err := services.AddMod(profile, mod); err != nil {
			if errors.Is(err, services.ErrModAlreadyAdded) {
				pterm.Warning.Println(arg + " has already been added")
				continue
			}
			return err
		}
		pterm.Success.Println("Added " + name)
	}
	return services.SaveProfile(item, profile)
}

func removeMods(c *cli.Context) error {
	item, profile, err := services.ActiveProfile(configPath(c))
	if err != nil {
		return err
	}

	for _, arg := range c.Args().Slice() {
		mod, err := services.RemoveMod(profile, arg)
		if errors.Is(err, services.ErrModNotFound) {
			pterm.Warning.Println("Could not find mod " + arg)
			continue
		}
		pterm.Success.Println("Removed " + mod.Name)
	}
	return services.SaveProfile(item, profile)
}

func listMods(c *cli.Context) error {
	_, profile, err := services.ActiveProfile(configPath(c))
	if err != nil {
		return err
	}

	lname := len("NAME:")
	for _, mod := range profile.Mods {
		if len(mod.Name) > lname {
			lname = len(mod.Name)
		}
	}

	fmt.Println()
	fmt.Println(text.AlignDefault.Apply("NAME:", lname+2) + "SOURCE:")
	for _, mod := range profile.Mods {
		fmt.Println(text.AlignDefault.Apply(text.Bold.Sprint(mod.Name), lname+2) + text.Underline.Sprint(mod.Identifier.String()))
	}
	fmt.Println()
	return nil
}
