package gltfgen

import (
	mst "github.com/flywave/go-mst"
)

// CubeToMst exports the cube geometry as an MST mesh so it can feed
// the flywave mesh pipeline directly, without going through the
// glTF files.
type CubeToMst struct {
}

func NewCubeToMst() *CubeToMst {
	return &CubeToMst{}
}

// Convert builds an MST mesh from the cube constants and returns it
// together with the axis-aligned bounds of the positions. MST carries
// no per-vertex colors, so the mesh gets a single default material.
func (cv *CubeToMst) Convert() (*mst.Mesh, *[6]float64, error) {
	mesh := mst.NewMesh()

	mesh.Materials = append(mesh.Materials, &mst.BaseMaterial{
		Color: [3]byte{255, 255, 255},
	})

	meshNode := &mst.MeshNode{}
	meshNode.Vertices = append(meshNode.Vertices, CubePositions...)
	meshNode.Normals = append(meshNode.Normals, CubeNormals...)

	faceGroup := &mst.MeshTriangle{
		Batchid: int32(0),
	}
	for i := 0; i < len(CubeIndices); i += 3 {
		faceGroup.Faces = append(faceGroup.Faces, &mst.Face{
			Vertex: [3]uint32{CubeIndices[i], CubeIndices[i+1], CubeIndices[i+2]},
		})
	}
	meshNode.FaceGroup = append(meshNode.FaceGroup, faceGroup)

	mesh.Nodes = append(mesh.Nodes, meshNode)

	return mesh, CubeBounds(), nil
}
