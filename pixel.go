package imlib

// RowPointer returns scanline y. The row is not bounds-checked. For a
// format without a pixel layout the whole buffer is returned.
func (img *Image) RowPointer(y int) []byte {
	stride := img.Format.BytesPerRow(img.Width)
	if stride == 0 {
		return img.Data
	}
	off := y * stride
	return img.Data[off : off+stride]
}

// GetPixelFast reads pixel x from a row returned by RowPointer without
// bounds checks. It returns -1 for a format without a pixel layout.
func (img *Image) GetPixelFast(row []byte, x int) int {
	pc := codecFor(img.Format)
	if pc == nil {
		return -1
	}
	return pc.get(row, x)
}

// SetPixel writes c at (x, y). Writes outside the image or to a format
// without a pixel layout are dropped.
func (img *Image) SetPixel(x, y, c int) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	pc := codecFor(img.Format)
	if pc == nil {
		return
	}
	pc.put(img.RowPointer(y), x, c)
}

// SetPixelBlended mixes c into the pixel at (x, y). The weight is the
// share of the OLD pixel out of 256: 0 writes c, 256 keeps the old value.
// Weights outside [0, 256] are clamped.
func (img *Image) SetPixelBlended(x, y, weight, c int) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	pc := codecFor(img.Format)
	if pc == nil {
		return
	}
	pc.blend(img.RowPointer(y), x, max(0, min(weight, 256)), c)
}

// hLine sets the inclusive span [x1, x2] on row y.
func (img *Image) hLine(x1, x2, y, c int) {
	for x := x1; x <= x2; x++ {
		img.SetPixel(x, y, c)
	}
}

// vLine sets the inclusive span [y1, y2] on column x.
func (img *Image) vLine(x, y1, y2, c int) {
	for y := y1; y <= y2; y++ {
		img.SetPixel(x, y, c)
	}
}
