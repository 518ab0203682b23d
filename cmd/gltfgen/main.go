package main

import (
	"fmt"
	"os"

	"github.com/flywave/go-gltfgen"
)

func main() {
	em := gltfgen.NewEmitter(".")

	n, err := em.EmitBinary()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := em.EmitDocument(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d bytes\n", gltfgen.BinaryName, n)
	fmt.Printf("Place this file in the %s/ directory alongside %s\n", gltfgen.OutputDir, gltfgen.DocumentName)
}
