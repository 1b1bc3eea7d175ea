//go:build gpu

package main

// Building with -tags gpu registers the GPU accelerator, so fills and
// strokes on the preview surfaces run through WebGPU when available.
import _ "github.com/gogpu/gg/gpu"
