package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bodgit/tilemap"
	"github.com/bodgit/tilemap/event"
	"github.com/bodgit/tilemap/internal/config"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func openProject(c *cli.Context) (*tilemap.Project, *config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.IsSet("root") {
		cfg.Root = c.String("root")
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}

	p, err := tilemap.New(cfg.Root, cfg.Layout, cfg.Logger())
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

func withProject(fn func(*cli.Context, *tilemap.Project, *config.Config) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		p, cfg, err := openProject(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer p.Close()

		if err := fn(c, p, cfg); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}
}

func requireArg(c *cli.Context) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
}

func listGroups(c *cli.Context, p *tilemap.Project, _ *config.Config) error {
	g := p.Groups()
	for i, group := range g.Groups {
		fmt.Fprintf(c.App.Writer, "%s\n", group)
		for _, name := range g.Maps[i] {
			fmt.Fprintf(c.App.Writer, "\t%s\n", name)
		}
	}
	return nil
}

func showMap(c *cli.Context, p *tilemap.Project, _ *config.Config) error {
	requireArg(c)

	m := p.Map(c.Args().First())
	if c.Bool("dump") {
		cs := spew.ConfigState{Indent: "\t", MaxDepth: 3, DisablePointerAddresses: true}
		cs.Fdump(c.App.Writer, m)
		return nil
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%s (%sx%s)\n", m.Name, m.Width, m.Height)
	fmt.Fprintf(w, "tilesets: %s, %s\n", m.PrimaryTilesetLabel, m.SecondaryTilesetLabel)
	fmt.Fprintf(w, "song: %s\n", m.Song)
	fmt.Fprintf(w, "blocks: %d, border: %d\n", len(m.Blockdata), len(m.Border))
	for _, conn := range m.Connections {
		fmt.Fprintf(w, "connection: %s %s %s\n", conn.Direction, conn.Offset, conn.Map)
	}
	for _, k := range []event.Kind{event.KindObject, event.KindWarp, event.KindCoord, event.KindSign, event.KindHiddenItem} {
		fmt.Fprintf(w, "%s events: %d\n", k, len(m.Events.Kind(k)))
	}
	return nil
}

func showTileset(c *cli.Context, p *tilemap.Project, _ *config.Config) error {
	requireArg(c)

	t := p.Tileset(c.Args().First())
	fmt.Fprintf(c.App.Writer, "%s: %d tiles, %d metatiles, %d palettes\n", t.Name, len(t.Tiles), len(t.Metatiles), len(t.Palettes))
	return nil
}

func resave(c *cli.Context, p *tilemap.Project, _ *config.Config) error {
	for _, name := range p.Groups().Names {
		p.Map(name)
	}
	return p.SaveAllMaps()
}

func catalog(c *cli.Context, p *tilemap.Project, cfg *config.Config) error {
	file := cfg.Catalog
	if c.NArg() > 0 {
		file = c.Args().First()
	}

	db, err := tilemap.NewCatalog(file)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Index(context.Background(), p)
}

func listSongs(c *cli.Context, p *tilemap.Project, _ *config.Config) error {
	for _, name := range p.SongNames() {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func showSprite(c *cli.Context, p *tilemap.Project, _ *config.Config) error {
	requireArg(c)

	path := p.ObjectGraphicsPath(c.Args().First())
	if path == "" {
		return fmt.Errorf("no graphics found for %s", c.Args().First())
	}
	fmt.Fprintln(c.App.Writer, path)
	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tilemap"
	app.Usage = "GBA map project inspection utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"TILEMAP_CONFIG"},
			Usage:   "path to config file",
		},
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "path to project root",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "groups",
			Usage:  "List map groups and their maps",
			Action: withProject(listGroups),
		},
		{
			Name:      "map",
			Usage:     "Show a summary of a map",
			ArgsUsage: "NAME",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "dump",
					Usage: "dump the whole map structure",
				},
			},
			Action: withProject(showMap),
		},
		{
			Name:      "tileset",
			Usage:     "Show a summary of a tileset",
			ArgsUsage: "LABEL",
			Action:    withProject(showTileset),
		},
		{
			Name:   "resave",
			Usage:  "Load and save every map, normalizing the source files",
			Action: withProject(resave),
		},
		{
			Name:      "catalog",
			Usage:     "Index every map into a sqlite database",
			ArgsUsage: "[DATABASE]",
			Action:    withProject(catalog),
		},
		{
			Name:   "songs",
			Usage:  "List song constants",
			Action: withProject(listSongs),
		},
		{
			Name:      "sprite",
			Usage:     "Print the graphics path of an object sprite",
			ArgsUsage: "CONSTANT",
			Action:    withProject(showSprite),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
