package gltfgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// Output locations, relative to the emitter's base directory. The
// models directory must already exist; a missing or unwritable
// directory surfaces as the write error.
const (
	OutputDir    = "models"
	BinaryName   = "scene.bin"
	DocumentName = "scene.gltf"
)

// Emitter writes the cube geometry buffer and its scene description
// under BaseDir/models.
type Emitter struct {
	BaseDir string
}

func NewEmitter(baseDir string) *Emitter {
	return &Emitter{BaseDir: baseDir}
}

// EmitBinary writes the packed geometry buffer to models/scene.bin,
// creating or truncating the file, and returns the number of bytes
// written.
func (e *Emitter) EmitBinary() (int, error) {
	data := EncodeGeometry()
	path := filepath.Join(e.BaseDir, OutputDir, BinaryName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write geometry buffer: %v", err)
	}
	return len(data), nil
}

// EmitDocument writes the scene description to models/scene.gltf. The
// document references the geometry buffer by relative URI, so both
// files belong in the same directory.
func (e *Emitter) EmitDocument() error {
	doc := BuildDocument()
	path := filepath.Join(e.BaseDir, OutputDir, DocumentName)
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("write scene document: %v", err)
	}
	return nil
}
