package bvh

// The Swappable interface is the minimal mutation surface needed to reorder
// an externally-owned container.
type Swappable interface {
	// Exchange the entries at indices i and j.
	Swap(i, j int)
}

// ApplyOrder rearranges set in place so that the entry at index start+i is
// the one that originally sat at order[i], using only swaps. order holds
// absolute set indices and must be a permutation of [start, start+len(order)).
//
// Entries are moved to their final position by following permutation cycles
// through an inverse position map, so the number of swaps performed is at
// most len(order) minus the number of entries already in place. Returns the
// swap count.
func ApplyOrder(set Swappable, order []int, start int) int {
	// pos[i] is the destination offset of the entry currently at offset i.
	pos := make([]int, len(order))
	for i, idx := range order {
		pos[idx-start] = i
	}

	swaps := 0
	for p := range pos {
		for pos[p] != p {
			q := pos[p]
			set.Swap(start+p, start+q)
			pos[p], pos[q] = pos[q], pos[p]
			swaps++
		}
	}
	return swaps
}
