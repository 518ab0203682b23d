package gltfgen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument()

	if len(doc.Buffers) != 1 {
		t.Fatalf("expected 1 buffer, got %d", len(doc.Buffers))
	}
	if doc.Buffers[0].URI != BinaryName {
		t.Errorf("buffer URI = %q, expected %q", doc.Buffers[0].URI, BinaryName)
	}
	if doc.Buffers[0].ByteLength != TotalByteLength {
		t.Errorf("buffer byteLength = %d, expected %d", doc.Buffers[0].ByteLength, TotalByteLength)
	}

	if len(doc.BufferViews) != 4 {
		t.Fatalf("expected 4 bufferViews, got %d", len(doc.BufferViews))
	}
	offsets := []uint32{PositionByteOffset, NormalByteOffset, ColorByteOffset, IndexByteOffset}
	lengths := []uint32{PositionByteLength, NormalByteLength, ColorByteLength, IndexByteLength}
	for i, bv := range doc.BufferViews {
		if bv.ByteOffset != offsets[i] {
			t.Errorf("bufferView[%d] byteOffset = %d, expected %d", i, bv.ByteOffset, offsets[i])
		}
		if bv.ByteLength != lengths[i] {
			t.Errorf("bufferView[%d] byteLength = %d, expected %d", i, bv.ByteLength, lengths[i])
		}
	}
	if doc.BufferViews[3].Target != gltf.TargetElementArrayBuffer {
		t.Error("index bufferView target is not ELEMENT_ARRAY_BUFFER")
	}

	if len(doc.Accessors) != 4 {
		t.Fatalf("expected 4 accessors, got %d", len(doc.Accessors))
	}
	for i := 0; i < 3; i++ {
		acc := doc.Accessors[i]
		if acc.ComponentType != gltf.ComponentFloat || acc.Type != gltf.AccessorVec3 {
			t.Errorf("accessor[%d] is not a float32 vec3", i)
		}
		if acc.Count != VertexCount {
			t.Errorf("accessor[%d] count = %d, expected %d", i, acc.Count, VertexCount)
		}
	}
	idxAcc := doc.Accessors[3]
	if idxAcc.ComponentType != gltf.ComponentUint || idxAcc.Type != gltf.AccessorScalar {
		t.Error("index accessor is not a uint32 scalar")
	}
	if idxAcc.Count != IndexCount {
		t.Errorf("index accessor count = %d, expected %d", idxAcc.Count, IndexCount)
	}

	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatal("expected 1 mesh with 1 primitive")
	}
	prim := doc.Meshes[0].Primitives[0]
	attrs := map[string]uint32{gltf.POSITION: 0, gltf.NORMAL: 1, gltf.COLOR_0: 2}
	for name, idx := range attrs {
		if got, ok := prim.Attributes[name]; !ok || got != idx {
			t.Errorf("attribute %s = %d (present %v), expected %d", name, got, ok, idx)
		}
	}
	if prim.Indices == nil || *prim.Indices != 3 {
		t.Error("primitive does not reference the index accessor")
	}

	if len(doc.Scenes) != 1 || len(doc.Scenes[0].Nodes) != 1 {
		t.Fatal("expected a single scene with a single node")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, OutputDir), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	em := NewEmitter(dir)
	if _, err := em.EmitBinary(); err != nil {
		t.Fatalf("emit binary failed: %v", err)
	}
	if err := em.EmitDocument(); err != nil {
		t.Fatalf("emit document failed: %v", err)
	}

	// Open resolves the relative buffer URI against the document directory,
	// so the external blob comes back attached to the buffer.
	doc, err := gltf.Open(filepath.Join(dir, OutputDir, DocumentName))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if len(doc.Buffers) != 1 {
		t.Fatalf("expected 1 buffer, got %d", len(doc.Buffers))
	}
	if !bytes.Equal(doc.Buffers[0].Data, EncodeGeometry()) {
		t.Error("resolved buffer data does not match the encoded geometry")
	}

	positions := decodeVec3s(t, doc.Buffers[0].Data[PositionByteOffset:PositionByteOffset+PositionByteLength], VertexCount)
	for i, v := range positions {
		if v != CubePositions[i] {
			t.Errorf("decoded position[%d] = %v, expected %v", i, v, CubePositions[i])
		}
	}
}
