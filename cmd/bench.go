package cmd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bimformation/XbimGeometry/bvh"
	"github.com/bimformation/XbimGeometry/geom"
	"github.com/bimformation/XbimGeometry/types"
	"github.com/cespare/xxhash/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Sorter tunables that can be overridden from a toml file.
type tunables struct {
	GridBits uint `toml:"grid-bits"`
	ForkBit  int  `toml:"fork-bit"`
}

// Wraps a primitive list so the number of swaps performed by the sorter can
// be reported.
type countingSet struct {
	geom.PrimitiveList
	swaps int
}

func (set *countingSet) Swap(i, j int) {
	set.PrimitiveList.Swap(i, j)
	set.swaps++
}

// Sort randomly generated primitives and report statistics.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	count := ctx.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid primitive count %d", count)
	}

	opts := bvh.DefaultOptions()
	if tunablesFile := ctx.String("tunables"); tunablesFile != "" {
		var tun tunables
		if _, err := toml.DecodeFile(tunablesFile, &tun); err != nil {
			return err
		}
		if tun.GridBits != 0 {
			opts.GridBits = tun.GridBits
		}
		if tun.ForkBit != 0 {
			opts.ForkBit = tun.ForkBit
		}
	}

	seed := ctx.Int64("seed")
	logger.Noticef("generating %d primitives (seed %d)\n", count, seed)
	set := &countingSet{PrimitiveList: genPrimitives(count, seed)}

	sceneBox := bvh.BoundsOf(set, 0, count-1)

	start := time.Now()
	bvh.NewSorter(opts).Sort(set, sceneBox)
	elapsed := time.Since(start)

	logger.Noticef("sorting statistics:\n%s", benchStats(set, opts, elapsed))
	return nil
}

// Generate primitives with random AABBs spread over a 100-unit cube.
func genPrimitives(count int, seed int64) geom.PrimitiveList {
	rng := rand.New(rand.NewSource(seed))

	set := make(geom.PrimitiveList, count)
	for i := range set {
		center := types.XYZ(rng.Float32()*100.0, rng.Float32()*100.0, rng.Float32()*100.0)
		halfSide := rng.Float32() + 0.1
		set[i] = geom.NewPrimitive(i, types.BoxFromCorners(
			center.Sub(types.XYZ(halfSide, halfSide, halfSide)),
			center.Add(types.XYZ(halfSide, halfSide, halfSide)),
		))
	}
	return set
}

// Render a stats table for a completed bench run.
func benchStats(set *countingSet, opts bvh.Options, elapsed time.Duration) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", set.Len())})
	table.Append([]string{"Grid bits/axis", fmt.Sprintf("%d", opts.GridBits)})
	table.Append([]string{"Fork threshold bit", fmt.Sprintf("%d", opts.ForkBit)})
	table.Append([]string{"Sort time", fmt.Sprintf("%d ms", elapsed.Nanoseconds()/1e6)})
	table.Append([]string{"Swaps", fmt.Sprintf("%d", set.swaps)})
	table.Append([]string{"Order digest", fmt.Sprintf("%016x", orderDigest(set.PrimitiveList))})
	table.Render()

	return buf.String()
}

// Digest the identity markers of the set in final index order. Identical
// input and tunables always yield the same digest regardless of how many
// sorting tasks ran concurrently.
func orderDigest(set geom.PrimitiveList) uint64 {
	digest := xxhash.New()

	var scratch [8]byte
	for _, prim := range set {
		binary.LittleEndian.PutUint64(scratch[:], uint64(prim.ID))
		digest.Write(scratch[:])
	}
	return digest.Sum64()
}
