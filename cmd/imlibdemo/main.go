// Command imlibdemo renders the imlib reference gallery.
//
// Each scene is written as a PNG rasterised by imlib and as an SVG vector
// reference of the same geometry, so the two can be compared side by side.
// A contact sheet with every scene scaled into a grid is written as well.
package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/tab5ui/imlib"
	"github.com/tab5ui/imlib/internal/gallery"
)

func main() {
	var (
		output = flag.String("output", "gallery", "output directory")
		format = flag.String("format", "rgb565", "pixel format: binary, gray or rgb565")
		thumb  = flag.Int("thumb", 96, "contact sheet cell size")
		noSVG  = flag.Bool("nosvg", false, "skip SVG references")
	)
	flag.Parse()

	pf, ok := parseFormat(*format)
	if !ok {
		log.Fatalf("Unknown format %q", *format)
	}
	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	fonts, err := imlib.NewFontRegistry()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	tr := imlib.NewTextRenderer(fonts)

	var rendered []*imlib.Image
	for _, category := range sortedCategories() {
		for _, s := range gallery.All[category] {
			name := category + "_" + s.Name
			img := s.Render(pf, tr)
			rendered = append(rendered, img)

			if err := img.SavePNG(filepath.Join(*output, name+".png")); err != nil {
				log.Fatalf("Failed to save %s: %v", name, err)
			}
			if !*noSVG {
				if err := saveSVG(filepath.Join(*output, name+".svg"), s); err != nil {
					log.Fatalf("Failed to save %s: %v", name, err)
				}
			}
		}
	}

	sheet := contactSheet(rendered, *thumb)
	if err := sheet.SavePNG(filepath.Join(*output, "sheet.png")); err != nil {
		log.Fatalf("Failed to save contact sheet: %v", err)
	}

	log.Printf("Gallery saved to %s (%d scenes, %s)\n", *output, len(rendered), pf)
}

func parseFormat(s string) (imlib.PixelFormat, bool) {
	switch s {
	case "binary":
		return imlib.Binary, true
	case "gray", "grayscale":
		return imlib.Grayscale, true
	case "rgb565":
		return imlib.RGB565, true
	default:
		return 0, false
	}
}

func sortedCategories() []string {
	names := make([]string, 0, len(gallery.All))
	for name := range gallery.All {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// contactSheet scales every image into a square cell of a grid four
// cells wide.
func contactSheet(images []*imlib.Image, cell int) *imlib.Image {
	const cols = 4
	const gap = 4
	rows := (len(images) + cols - 1) / cols
	sheet := imlib.NewImage(cols*(cell+gap)+gap, rows*(cell+gap)+gap, imlib.RGB565)
	sheet.Clear(imlib.RGB(40, 40, 48))

	for i, img := range images {
		x := gap + (i%cols)*(cell+gap)
		y := gap + (i/cols)*(cell+gap)
		w, h := fit(img.Width, img.Height, cell)
		dr := image.Rect(x, y, x+w, y+h).Add(image.Pt((cell-w)/2, (cell-h)/2))
		sheet.DrawScaled(img, dr)
		sheet.DrawRectangle(dr.Min.X-1, dr.Min.Y-1, dr.Dx()+2, dr.Dy()+2, imlib.RGB(90, 90, 100), 1, false)
	}
	return sheet
}

// fit scales (w, h) to fit inside a size×size square, keeping the aspect.
func fit(w, h, size int) (int, int) {
	if w >= h {
		return size, max(1, h*size/w)
	}
	return max(1, w*size/h), size
}
