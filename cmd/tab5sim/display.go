package main

import (
	"io"
	"sync"

	"github.com/tab5ui/imlib"
)

// Display is a simulated RGB565 panel. The frame loop draws under the
// write lock; readers take snapshots under the read lock.
type Display struct {
	mu  sync.RWMutex
	fb  []byte
	img *imlib.Image
}

// NewDisplay allocates a width×height RGB565 framebuffer.
func NewDisplay(width, height int) *Display {
	fb := make([]byte, imlib.RGB565.BufferSize(width, height))
	return &Display{fb: fb, img: imlib.WrapImage(width, height, imlib.RGB565, fb)}
}

// Draw runs fn with exclusive access to the framebuffer.
func (d *Display) Draw(fn func(img *imlib.Image)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.img)
}

// Snapshot returns a copy of the current frame.
func (d *Display) Snapshot() *imlib.Image {
	d.mu.RLock()
	defer d.mu.RUnlock()
	data := make([]byte, len(d.fb))
	copy(data, d.fb)
	return imlib.WrapImage(d.img.Width, d.img.Height, d.img.Format, data)
}

// WritePNG encodes the current frame as PNG.
func (d *Display) WritePNG(w io.Writer) error {
	return d.Snapshot().EncodePNG(w)
}
