package bvh

import "github.com/bimformation/XbimGeometry/types"

// Scene axes shorter than this are treated as having this extent when
// calculating the voxel scale, so a degenerate (flat) scene box never
// produces a division blow-up.
const minAxisExtent float32 = 1e-7

// Bit-dilation steps for a single axis. After each step the value is shifted,
// OR-ed with itself and masked, so that once all steps have run bit k of a
// 10-bit input sits at bit 3k of the output with zeros in between.
var spreadSteps = [4]struct {
	shift uint
	mask  uint32
}{
	{16, 0x030000FF},
	{8, 0x0300F00F},
	{4, 0x030C30C3},
	{2, 0x09249249},
}

// Spread the low 10 bits of v so consecutive bits end up three positions
// apart.
func spreadBits(v uint32) uint32 {
	for _, step := range spreadSteps {
		v = (v | v<<step.shift) & step.mask
	}
	return v
}

// Interleave three voxel coordinates into a single Z-order value. Bit 3k of
// the result is bit k of x, bit 3k+1 is bit k of y and bit 3k+2 is bit k of z.
func mortonCode(x, y, z uint32) uint32 {
	return spreadBits(x) | spreadBits(y)<<1 | spreadBits(z)<<2
}

// EncodeCenter maps a point inside sceneBox onto a voxel grid with
// 2^gridBits cells per axis and returns its Morton code. Nearby points yield
// numerically close codes. The same point and scene box always produce the
// same code.
func EncodeCenter(center types.Vec3, sceneBox types.Box, gridBits uint) uint32 {
	cells := float32(uint32(1) << gridBits)
	maxVoxel := uint32(1)<<gridBits - 1

	diag := sceneBox.Diagonal()
	var voxel [3]uint32
	for axis := 0; axis < 3; axis++ {
		side := diag[axis]
		if side < minAxisExtent {
			side = minAxisExtent
		}

		// Clamp in float space so points outside the scene box cannot
		// overflow the integer conversion.
		scaled := (center[axis] - sceneBox.Min[axis]) * (cells / side)
		switch {
		case scaled <= 0:
			voxel[axis] = 0
		case scaled >= float32(maxVoxel):
			voxel[axis] = maxVoxel
		default:
			voxel[axis] = uint32(scaled)
		}
	}

	return mortonCode(voxel[0], voxel[1], voxel[2])
}
