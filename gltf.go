package gltfgen

import (
	"github.com/qmuntal/gltf"
)

// BuildDocument assembles the scene description that consumes the
// geometry buffer. The bufferViews and accessors mirror the packed
// layout exactly: any change to the buffer encoding must be reflected
// here, since the buffer itself carries no header.
func BuildDocument() *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "go-gltfgen"

	doc.Buffers = []*gltf.Buffer{
		{URI: BinaryName, ByteLength: TotalByteLength},
	}

	doc.BufferViews = []*gltf.BufferView{
		{Buffer: 0, ByteOffset: PositionByteOffset, ByteLength: PositionByteLength, Target: gltf.TargetArrayBuffer},
		{Buffer: 0, ByteOffset: NormalByteOffset, ByteLength: NormalByteLength, Target: gltf.TargetArrayBuffer},
		{Buffer: 0, ByteOffset: ColorByteOffset, ByteLength: ColorByteLength, Target: gltf.TargetArrayBuffer},
		{Buffer: 0, ByteOffset: IndexByteOffset, ByteLength: IndexByteLength, Target: gltf.TargetElementArrayBuffer},
	}

	bounds := CubeBounds()
	doc.Accessors = []*gltf.Accessor{
		{
			BufferView:    gltf.Index(0),
			ComponentType: gltf.ComponentFloat,
			Count:         VertexCount,
			Type:          gltf.AccessorVec3,
			Min:           []float32{float32(bounds[0]), float32(bounds[1]), float32(bounds[2])},
			Max:           []float32{float32(bounds[3]), float32(bounds[4]), float32(bounds[5])},
		},
		{
			BufferView:    gltf.Index(1),
			ComponentType: gltf.ComponentFloat,
			Count:         VertexCount,
			Type:          gltf.AccessorVec3,
		},
		{
			BufferView:    gltf.Index(2),
			ComponentType: gltf.ComponentFloat,
			Count:         VertexCount,
			Type:          gltf.AccessorVec3,
		},
		{
			BufferView:    gltf.Index(3),
			ComponentType: gltf.ComponentUint,
			Count:         IndexCount,
			Type:          gltf.AccessorScalar,
		},
	}

	doc.Materials = []*gltf.Material{
		{
			Name: "CubeMaterial",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float32{1, 1, 1, 1},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(1),
			},
			AlphaMode: gltf.AlphaOpaque,
		},
	}

	doc.Meshes = []*gltf.Mesh{
		{
			Name: "Cube",
			Primitives: []*gltf.Primitive{
				{
					Attributes: map[string]uint32{
						gltf.POSITION: 0,
						gltf.NORMAL:   1,
						gltf.COLOR_0:  2,
					},
					Indices:  gltf.Index(3),
					Material: gltf.Index(0),
					Mode:     gltf.PrimitiveTriangles,
				},
			},
		},
	}

	doc.Nodes = []*gltf.Node{
		{Name: "Cube", Mesh: gltf.Index(0)},
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc
}
