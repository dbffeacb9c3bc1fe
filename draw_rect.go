package imlib

// DrawRectangle draws the rectangle with top-left corner (x, y) and size
// w×h. With fill set the interior is painted and thickness is ignored.
// Otherwise an outline of the given thickness is drawn centred on the
// border pixels; odd leftovers go outward.
func (img *Image) DrawRectangle(x, y, w, h, c, thickness int, fill bool) {
	if fill {
		for i := y; i < y+h; i++ {
			for j := x; j < x+w; j++ {
				img.SetPixel(j, i, c)
			}
		}
		return
	}
	if thickness <= 0 {
		return
	}

	t0 := thickness / 2
	t1 := (thickness - 1) / 2

	bottom := y + h - 1
	for i := x - t0; i < x+w+t1; i++ {
		img.vLine(i, y-t0, y+t1, c)
		img.vLine(i, bottom-t0, bottom+t1, c)
	}
	right := x + w - 1
	for i := y - t0; i < y+h+t1; i++ {
		img.hLine(x-t0, x+t1, i, c)
		img.hLine(right-t0, right+t1, i, c)
	}
}
