// Package imlib is a small raster graphics core for embedded framebuffers.
//
// # Overview
//
// imlib draws directly into caller-owned pixel buffers in one of three
// packed formats: 1-bit binary, 8-bit grayscale and little-endian RGB565.
// Every primitive mutates the buffer in place, clips against the image
// bounds and never allocates on the drawing path.
//
// # Quick Start
//
//	img := imlib.NewImage(320, 240, imlib.RGB565)
//	img.Clear(imlib.RGB(0, 0, 0))
//
//	red := imlib.RGB(255, 0, 0)
//	img.DrawLine(10, 10, 300, 200, red, 3)
//	img.DrawCircle(160, 120, 60, red, 2, false)
//
//	fonts, _ := imlib.NewFontRegistry()
//	r := imlib.NewTextRenderer(fonts)
//	r.DrawString(img, 8, 8, "Hello", red, imlib.TextStyle{Scale: 2})
//
// # Colors
//
// Colors are plain ints in the image's native encoding: 0/1 for Binary,
// 0..255 for Grayscale and a packed RGB565 value for RGB565. Use [RGB] or
// [ColorFor] to build them from 8-bit components or a [color.Color].
//
// # Anti-aliasing
//
// Antialiased primitives blend through [Image.SetPixelBlended], whose weight
// is the share of the OLD pixel: 0 writes the new color, 256 leaves the
// pixel unchanged.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X grows right, Y grows down. Rotations are in
// degrees and turn clockwise on screen.
//
// # Concurrency
//
// An Image is not safe for concurrent mutation. Callers serialise draw
// sequences against any reader of the buffer.
package imlib
