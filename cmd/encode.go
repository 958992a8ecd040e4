package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bimformation/XbimGeometry/bvh"
	"github.com/bimformation/XbimGeometry/types"
	"github.com/urfave/cli"
)

// Print the Morton code of a point inside a scene box.
func Encode(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 3 {
		return errors.New("expected exactly 3 arguments: the x, y and z coordinates of the point")
	}

	var point types.Vec3
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(ctx.Args().Get(i), 32)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q", ctx.Args().Get(i))
		}
		point[i] = float32(val)
	}

	boxMin, err := parseVec3(ctx.String("box-min"))
	if err != nil {
		return err
	}
	boxMax, err := parseVec3(ctx.String("box-max"))
	if err != nil {
		return err
	}

	gridBits := ctx.Uint("grid-bits")
	if gridBits == 0 || gridBits > 10 {
		return fmt.Errorf("grid-bits must be in [1, 10]; got %d", gridBits)
	}

	code := bvh.EncodeCenter(point, types.BoxFromCorners(boxMin, boxMax), gridBits)
	logger.Noticef("morton code: 0x%08X (%d)\n", code, code)
	return nil
}

// Parse a comma-separated coordinate triplet.
func parseVec3(in string) (types.Vec3, error) {
	var out types.Vec3

	fields := strings.Split(in, ",")
	if len(fields) != 3 {
		return out, fmt.Errorf("expected 3 comma-separated values; got %q", in)
	}

	for i, field := range fields {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return out, fmt.Errorf("invalid coordinate %q", field)
		}
		out[i] = float32(val)
	}
	return out, nil
}
