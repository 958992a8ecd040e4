package bvh

import (
	"math/rand"
	"testing"
)

// A swappable integer list that records how many swaps were applied to it.
type intSet struct {
	values []int
	swaps  int
}

func (set *intSet) Swap(i, j int) {
	set.values[i], set.values[j] = set.values[j], set.values[i]
	set.swaps++
}

func TestApplyOrder(t *testing.T) {
	type spec struct {
		values    []int
		order     []int
		start     int
		expValues []int
	}
	specs := []spec{
		// Full-range rotation.
		{[]int{10, 11, 12}, []int{2, 0, 1}, 0, []int{12, 10, 11}},
		// Full reversal.
		{[]int{10, 11, 12, 13}, []int{3, 2, 1, 0}, 0, []int{13, 12, 11, 10}},
		// Sub-range reorder leaves surrounding entries alone.
		{[]int{10, 11, 12, 13, 14}, []int{3, 1, 2}, 1, []int{10, 13, 11, 12, 14}},
		// Single entry.
		{[]int{10}, []int{0}, 0, []int{10}},
		// Empty order.
		{[]int{10, 11}, []int{}, 0, []int{10, 11}},
	}

	for index, s := range specs {
		set := &intSet{values: s.values}
		ApplyOrder(set, s.order, s.start)

		for i, exp := range s.expValues {
			if set.values[i] != exp {
				t.Fatalf("[spec %d] expected value %d at position %d; got %d", index, exp, i, set.values[i])
			}
		}
	}
}

func TestApplyOrderIdentity(t *testing.T) {
	set := &intSet{values: []int{10, 11, 12, 13}}

	swaps := ApplyOrder(set, []int{0, 1, 2, 3}, 0)
	if swaps != 0 {
		t.Fatalf("expected an identity order to perform 0 swaps; got %d", swaps)
	}
}

func TestApplyOrderSwapBound(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	values := make([]int, 1000)
	order := rng.Perm(len(values))
	for i := range values {
		values[i] = 1000 + i
	}

	fixed := 0
	for i, idx := range order {
		if idx == i {
			fixed++
		}
	}

	set := &intSet{values: values}
	swaps := ApplyOrder(set, order, 0)

	if limit := len(order) - fixed; swaps > limit {
		t.Fatalf("expected at most %d swaps; got %d", limit, swaps)
	}
	for i, idx := range order {
		if set.values[i] != 1000+idx {
			t.Fatalf("expected value %d at position %d; got %d", 1000+idx, i, set.values[i])
		}
	}
}
