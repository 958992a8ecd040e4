package bvh

import "sync"

// A link pairs the Morton code of a primitive with the index it occupies in
// the primitive set. The sorter reorders links by code and applies the
// resulting order back to the set.
type link struct {
	code  uint32
	index int
}

// Reorder links[lo..hi] into ascending code order by recursively
// partitioning on each code bit, starting with bit and working down to bit 0.
// Sub-ranges produced while bit >= forkBit are sorted by concurrent tasks;
// below the threshold recursion stays sequential.
func radixSort(links []link, lo, hi, bit, forkBit int) {
	if lo >= hi || bit < 0 {
		return
	}

	mid := partition(links, lo, hi, uint(bit))
	forkJoin(bit >= forkBit,
		func() { radixSort(links, lo, mid-1, bit-1, forkBit) },
		func() { radixSort(links, mid, hi, bit-1, forkBit) },
	)
}

// Group entries of links[lo..hi] with a zero value at the given code bit
// before entries with a one value. Returns the index of the first one-bit
// entry (hi+1 when every entry has a zero bit). Relative order within each
// group is not preserved; lower bits disambiguate in later passes.
func partition(links []link, lo, hi int, bit uint) int {
	mask := uint32(1) << bit

	i, j := lo, hi
	for i <= j {
		for i <= j && links[i].code&mask == 0 {
			i++
		}
		for i <= j && links[j].code&mask != 0 {
			j--
		}
		if i < j {
			links[i], links[j] = links[j], links[i]
			i++
			j--
		}
	}
	return i
}

// Run left and right, concurrently when fork is set. left is handed to a new
// goroutine while right runs on the calling one; the call returns only after
// both complete, so tasks never outlive their parent.
func forkJoin(fork bool, left, right func()) {
	if !fork {
		left()
		right()
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		left()
		wg.Done()
	}()
	right()
	wg.Wait()
}
