package bvh

import (
	"math/rand"
	"testing"
)

func TestPartition(t *testing.T) {
	links := []link{
		{code: 0x20, index: 0},
		{code: 0x00, index: 1},
		{code: 0x3F, index: 2},
		{code: 0x1F, index: 3},
		{code: 0x20, index: 4},
		{code: 0x07, index: 5},
	}

	mid := partition(links, 0, len(links)-1, 5)

	expMid := 3
	if mid != expMid {
		t.Fatalf("expected partition on bit 5 to return %d; got %d", expMid, mid)
	}
	for i, ln := range links {
		bit := ln.code >> 5 & 1
		if i < mid && bit != 0 {
			t.Fatalf("expected zero bit at position %d; got code 0x%02X", i, ln.code)
		}
		if i >= mid && bit != 1 {
			t.Fatalf("expected one bit at position %d; got code 0x%02X", i, ln.code)
		}
	}
}

func TestPartitionUniformBit(t *testing.T) {
	links := []link{{code: 0x01}, {code: 0x02}, {code: 0x03}}

	// All entries have bit 4 clear; nothing belongs to the right group.
	if mid := partition(links, 0, 2, 4); mid != 3 {
		t.Fatalf("expected mid 3 when every entry has a zero bit; got %d", mid)
	}

	// All entries have bit 4 set; nothing belongs to the left group.
	links = []link{{code: 0x13}, {code: 0x1A}, {code: 0x1F}}
	if mid := partition(links, 0, 2, 4); mid != 0 {
		t.Fatalf("expected mid 0 when every entry has a one bit; got %d", mid)
	}
}

func genLinks(count int, seed int64) []link {
	rng := rand.New(rand.NewSource(seed))
	links := make([]link, count)
	for i := range links {
		links[i] = link{code: rng.Uint32() & 0x3FFFFFFF, index: i}
	}
	return links
}

func TestRadixSortAscending(t *testing.T) {
	links := genLinks(5000, 42)
	radixSort(links, 0, len(links)-1, 29, 24)

	for i := 1; i < len(links); i++ {
		if links[i].code < links[i-1].code {
			t.Fatalf("expected non-decreasing codes; got 0x%08X before 0x%08X at position %d", links[i-1].code, links[i].code, i)
		}
	}

	// All indices must still be present exactly once.
	seen := make([]bool, len(links))
	for _, ln := range links {
		if seen[ln.index] {
			t.Fatalf("index %d appears more than once after sorting", ln.index)
		}
		seen[ln.index] = true
	}
}

func TestRadixSortForkedMatchesSequential(t *testing.T) {
	forked := genLinks(20000, 7)
	sequential := genLinks(20000, 7)

	radixSort(forked, 0, len(forked)-1, 29, 24)
	// A threshold above the top bit keeps the whole sort on one goroutine.
	radixSort(sequential, 0, len(sequential)-1, 29, 30)

	for i := range forked {
		if forked[i] != sequential[i] {
			t.Fatalf("expected forked and sequential sorts to agree; entries differ at position %d: %+v vs %+v", i, forked[i], sequential[i])
		}
	}
}

func TestRadixSortDegenerateRanges(t *testing.T) {
	links := []link{{code: 5, index: 0}, {code: 3, index: 1}}

	// Inverted and single-entry ranges must not touch the table.
	radixSort(links, 1, 0, 29, 24)
	radixSort(links, 0, 0, 29, 24)
	if links[0].code != 5 || links[1].code != 3 {
		t.Fatalf("expected degenerate ranges to leave the table unchanged; got %+v", links)
	}

	radixSort(nil, 0, -1, 29, 24)
}

func TestRadixSortEqualCodes(t *testing.T) {
	links := []link{
		{code: 0x1234, index: 0},
		{code: 0x1234, index: 1},
		{code: 0x0001, index: 2},
		{code: 0x1234, index: 3},
	}
	radixSort(links, 0, len(links)-1, 29, 30)

	if links[0].code != 0x0001 {
		t.Fatalf("expected the lowest code first; got 0x%04X", links[0].code)
	}
	for i := 1; i < len(links); i++ {
		if links[i].code != 0x1234 {
			t.Fatalf("expected equal codes to be adjacent; got 0x%04X at position %d", links[i].code, i)
		}
	}
}
