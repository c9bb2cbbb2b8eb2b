package main

import (
	"path/filepath"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2025, "uintx")

type width struct {
	Bits  int
	Limbs int
}

//go:generate go run main.go
func main() {
	var data struct {
		Widths []width
	}
	for _, b := range []int{64, 128, 192, 256, 320, 384, 512, 1024, 2048, 4096} {
		data.Widths = append(data.Widths, width{Bits: b, Limbs: (b + 63) / 64})
	}

	entries := []bavard.Entry{
		{File: filepath.Join("..", "..", "params.go"), Templates: []string{"params.go.tmpl"}},
	}
	if err := bgen.Generate(data, "uintx", "./template/", entries...); err != nil {
		panic(err)
	}
}
