package cmd

import (
	"github.com/bimformation/XbimGeometry/log"
	"github.com/urfave/cli"
)

var logger = log.New("xbimgeom")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
