package gltfgen

import (
	"bytes"
	"encoding/binary"
)

// Byte layout of the geometry buffer. The consumer declares these exact
// offsets in its scene description, so the order and sizes are fixed:
// four arrays back to back, 4-byte little-endian components, no header.
const (
	VertexCount = 8
	IndexCount  = 36

	componentSize = 4

	PositionByteOffset = 0
	PositionByteLength = VertexCount * 3 * componentSize

	NormalByteOffset = PositionByteOffset + PositionByteLength
	NormalByteLength = VertexCount * 3 * componentSize

	ColorByteOffset = NormalByteOffset + NormalByteLength
	ColorByteLength = VertexCount * 3 * componentSize

	IndexByteOffset = ColorByteOffset + ColorByteLength
	IndexByteLength = IndexCount * componentSize

	TotalByteLength = IndexByteOffset + IndexByteLength
)

// EncodeGeometry packs the cube attribute arrays into a single buffer in
// the fixed order positions, normals, colors, indices. Floats are packed
// as IEEE-754 float32, indices as uint32, all little-endian.
func EncodeGeometry() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, TotalByteLength))
	for _, v := range CubePositions {
		binary.Write(buf, binary.LittleEndian, v)
	}
	for _, n := range CubeNormals {
		binary.Write(buf, binary.LittleEndian, n)
	}
	for _, c := range CubeColors {
		binary.Write(buf, binary.LittleEndian, c)
	}
	for _, i := range CubeIndices {
		binary.Write(buf, binary.LittleEndian, i)
	}
	return buf.Bytes()
}
