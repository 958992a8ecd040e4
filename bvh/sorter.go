package bvh

import (
	"time"

	"github.com/bimformation/XbimGeometry/log"
	"github.com/bimformation/XbimGeometry/types"
)

// The PrimitiveSet interface is implemented by primitive containers that the
// sorter can reorder in place. The sorter never looks at primitive payloads;
// it reads AABBs and mutates ordering only through Swap, so any payload
// representation travels correctly.
type PrimitiveSet interface {
	// Number of primitives in the set.
	Len() int

	// Get the AABB of the primitive at index.
	BBox(index int) types.Box

	// Exchange the primitives at indices i and j.
	Swap(i, j int)
}

// Sorter tunables.
type Options struct {
	// Grid resolution expressed as bits per axis, capped at 10. The Morton
	// code occupies 3*GridBits bits, so higher values trade code capacity
	// for finer spatial resolution.
	GridBits uint

	// Code bit index at or above which partitioned sub-ranges are sorted by
	// concurrent tasks. Lower values fork more aggressively; a value above
	// the top code bit keeps the whole sort sequential.
	ForkBit int
}

const maxGridBits = 10

// The reference tunables: a 1024-cell grid per axis and forking over the six
// most significant code bits.
func DefaultOptions() Options {
	return Options{
		GridBits: maxGridBits,
		ForkBit:  24,
	}
}

// Sorter reorders primitive sets into Morton-code order, giving spatially
// nearby primitives adjacent positions. The sorted order is the input the
// BVH tree builder consumes.
type Sorter struct {
	opts   Options
	logger log.Logger
}

// Create a sorter with the given tunables. A zero GridBits falls back to the
// default resolution; values above the cap are clamped.
func NewSorter(opts Options) *Sorter {
	if opts.GridBits == 0 || opts.GridBits > maxGridBits {
		opts.GridBits = maxGridBits
	}
	if opts.ForkBit <= 0 {
		opts.ForkBit = DefaultOptions().ForkBit
	}

	return &Sorter{
		opts:   opts,
		logger: log.New("sorter"),
	}
}

// Sort reorders the entire set into ascending Morton-code order against
// sceneBox. sceneBox must enclose every primitive AABB center in the set.
func (s *Sorter) Sort(set PrimitiveSet, sceneBox types.Box) {
	s.SortRange(set, sceneBox, 0, set.Len()-1)
}

// SortRange reorders the primitives with indices in [start, final] into
// ascending Morton-code order against sceneBox, leaving the rest of the set
// untouched. Ranges with fewer than two primitives (including start > final)
// are no-ops.
func (s *Sorter) SortRange(set PrimitiveSet, sceneBox types.Box, start, final int) {
	if final <= start {
		return
	}

	startTime := time.Now()

	links := make([]link, final-start+1)
	for i := range links {
		links[i] = link{
			code:  EncodeCenter(set.BBox(start+i).Center(), sceneBox, s.opts.GridBits),
			index: start + i,
		}
	}

	topBit := int(s.opts.GridBits)*3 - 1
	radixSort(links, 0, len(links)-1, topBit, s.opts.ForkBit)

	order := make([]int, len(links))
	for i, ln := range links {
		order[i] = ln.index
	}
	swaps := ApplyOrder(set, order, start)

	s.logger.Debugf(
		"sorted %d primitives in %d ms (%d swaps)\n",
		len(links), time.Since(startTime).Nanoseconds()/1e6, swaps,
	)
}

// Sort reorders the entire set into ascending Morton-code order against
// sceneBox using the default tunables.
func Sort(set PrimitiveSet, sceneBox types.Box) {
	NewSorter(DefaultOptions()).Sort(set, sceneBox)
}

// BoundsOf accumulates the AABB enclosing the primitives with indices in
// [start, final]. An empty range yields an inverted box.
func BoundsOf(set PrimitiveSet, start, final int) types.Box {
	box := types.NewBox()
	for i := start; i <= final; i++ {
		box = box.Extend(set.BBox(i))
	}
	return box
}
