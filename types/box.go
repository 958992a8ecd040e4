package types

import "math"

// An axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// Create an inverted box. Extending it with any point or box yields the
// extents of the extended geometry.
func NewBox() Box {
	return Box{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Create a box from its two corners.
func BoxFromCorners(min, max Vec3) Box {
	return Box{Min: min, Max: max}
}

// Grow the box so it encloses other.
func (b Box) Extend(other Box) Box {
	return Box{
		Min: MinVec3(b.Min, other.Min),
		Max: MaxVec3(b.Max, other.Max),
	}
}

// Grow the box so it encloses point p.
func (b Box) ExtendPoint(p Vec3) Box {
	return Box{
		Min: MinVec3(b.Min, p),
		Max: MaxVec3(b.Max, p),
	}
}

// Get the box center.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Get the per-axis side lengths.
func (b Box) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// Check whether the box encloses point p.
func (b Box) ContainsPoint(p Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}
