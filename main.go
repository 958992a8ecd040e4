package main

import (
	"os"

	"github.com/bimformation/XbimGeometry/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "xbimgeom"
	app.Usage = "spatial acceleration tools for the geometry kernel"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "bench",
			Usage: "sort randomly generated primitives and report statistics",
			Description: `
Generate a set of primitives with random AABBs, reorder them into Morton-code
order and print sorting statistics together with a digest of the final order.
Two runs with the same seed and tunables always report the same digest.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100000,
					Usage: "number of primitives to generate",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for the primitive generator",
				},
				cli.StringFlag{
					Name:  "tunables, t",
					Usage: "toml file overriding the sorter tunables",
				},
			},
			Action: cmd.Bench,
		},
		{
			Name:      "encode",
			Usage:     "print the Morton code of a point inside a scene box",
			ArgsUsage: "x y z",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "box-min",
					Value: "0,0,0",
					Usage: "scene box min corner as x,y,z",
				},
				cli.StringFlag{
					Name:  "box-max",
					Value: "1,1,1",
					Usage: "scene box max corner as x,y,z",
				},
				cli.UintFlag{
					Name:  "grid-bits",
					Value: 10,
					Usage: "grid resolution in bits per axis (max 10)",
				},
			},
			Action: cmd.Encode,
		},
	}

	app.Run(os.Args)
}
