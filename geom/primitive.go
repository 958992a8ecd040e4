package geom

import "github.com/bimformation/XbimGeometry/types"

// A primitive entry tracked by the spatial sorter. The sorter only ever
// inspects the cached AABB; the ID tags the entry so callers can map the
// reordered set back to their own data.
type Primitive struct {
	// Caller-assigned identity marker.
	ID int

	bbox   types.Box
	center types.Vec3
}

// Create a primitive with the given identity marker and AABB.
func NewPrimitive(id int, bbox types.Box) *Primitive {
	return &Primitive{
		ID:     id,
		bbox:   bbox,
		center: bbox.Center(),
	}
}

// Set the primitive AABB.
func (prim *Primitive) SetBBox(bbox types.Box) {
	prim.bbox = bbox
	prim.center = bbox.Center()
}

// Get the primitive AABB.
func (prim *Primitive) BBox() types.Box {
	return prim.bbox
}

// Get the primitive AABB center.
func (prim *Primitive) Center() types.Vec3 {
	return prim.center
}

// A list of primitives whose entries can be reordered in place. It satisfies
// the bvh.PrimitiveSet contract.
type PrimitiveList []*Primitive

// Number of primitives in the list.
func (l PrimitiveList) Len() int {
	return len(l)
}

// Get the AABB of the primitive at index.
func (l PrimitiveList) BBox(index int) types.Box {
	return l[index].bbox
}

// Exchange the primitives at indices i and j.
func (l PrimitiveList) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}
