package gltfgen

import (
	vec3d "github.com/flywave/go3d/float64/vec3"

	"github.com/flywave/go3d/vec3"
)

// CubePositions holds the eight corner positions of a unit cube centered
// on the origin, in vertex order.
var CubePositions = []vec3.T{
	{-1.0, -1.0, -1.0},
	{1.0, -1.0, -1.0},
	{1.0, 1.0, -1.0},
	{-1.0, 1.0, -1.0},
	{-1.0, -1.0, 1.0},
	{1.0, -1.0, 1.0},
	{1.0, 1.0, 1.0},
	{-1.0, 1.0, 1.0},
}

// CubeNormals holds one outward-pointing unit normal per vertex.
var CubeNormals = []vec3.T{
	{-0.577, -0.577, -0.577},
	{0.577, -0.577, -0.577},
	{0.577, 0.577, -0.577},
	{-0.577, 0.577, -0.577},
	{-0.577, -0.577, 0.577},
	{0.577, -0.577, 0.577},
	{0.577, 0.577, 0.577},
	{-0.577, 0.577, 0.577},
}

// CubeColors holds one RGB color per vertex, channels in [0,1].
var CubeColors = []vec3.T{
	{1.0, 0.0, 0.0}, // red
	{0.0, 1.0, 0.0}, // green
	{0.0, 0.0, 1.0}, // blue
	{1.0, 1.0, 0.0}, // yellow
	{1.0, 0.0, 1.0}, // magenta
	{0.0, 1.0, 1.0}, // cyan
	{1.0, 1.0, 1.0}, // white
	{0.5, 0.5, 0.5}, // gray
}

// CubeIndices lists 12 triangles, two per cube face. The order is fixed;
// winding is kept exactly as listed and is not validated.
var CubeIndices = []uint32{
	// front
	0, 1, 2, 2, 3, 0,
	// back
	4, 6, 5, 6, 4, 7,
	// left
	4, 0, 3, 3, 7, 4,
	// right
	1, 5, 6, 6, 2, 1,
	// top
	3, 2, 6, 6, 7, 3,
	// bottom
	4, 5, 1, 1, 0, 4,
}

// CubeBounds returns the axis-aligned bounds of the cube positions as
// [minX, minY, minZ, maxX, maxY, maxZ].
func CubeBounds() *[6]float64 {
	bbox := vec3d.MinBox
	for _, v := range CubePositions {
		p := vec3d.T{float64(v[0]), float64(v[1]), float64(v[2])}
		bbox.Extend(&p)
	}
	return bbox.Array()
}
