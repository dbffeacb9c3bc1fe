package main

import (
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tab5ui/imlib"
)

func TestDisplaySnapshotIsCopy(t *testing.T) {
	d := NewDisplay(4, 4)
	d.Draw(func(img *imlib.Image) {
		img.SetPixel(1, 1, 0xFFFF)
	})
	snap := d.Snapshot()
	d.Draw(func(img *imlib.Image) {
		img.Clear(0)
	})
	if got := snap.GetPixel(1, 1); got != 0xFFFF {
		t.Errorf("snapshot pixel = %#04x, want 0xFFFF", got)
	}
}

func TestDisplayConcurrentAccess(t *testing.T) {
	d := NewDisplay(32, 32)
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			d.Draw(func(img *imlib.Image) {
				img.DrawLine(0, i, 31, 31-i, 0xF800, 1)
			})
		}()
		go func() {
			defer wg.Done()
			_ = d.Snapshot()
		}()
	}
	wg.Wait()
}

func TestCellColors(t *testing.T) {
	img := imlib.NewImage(4, 4, imlib.RGB565)
	img.DrawRectangle(0, 0, 4, 2, 0xFFFF, 0, true)

	top, bottom := cellColors(img, 0, 0, 2, 2)
	if top != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("top = %v, want white", top)
	}
	if bottom != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("bottom of first row = %v, want white", bottom)
	}
	top, bottom = cellColors(img, 1, 1, 2, 2)
	if top != tcell.NewRGBColor(0, 0, 0) || bottom != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("second row = %v, %v, want black", top, bottom)
	}
}

func TestTerminalPaint(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	img := imlib.NewImage(20, 10, imlib.RGB565)
	img.Clear(imlib.RGB(0, 0, 255))
	term := &terminal{screen: screen}
	term.Paint(img)

	mainc, _, style, _ := screen.GetContent(3, 2)
	if mainc != '▀' {
		t.Errorf("cell rune = %q, want half block", mainc)
	}
	blue := tcell.NewRGBColor(0, 0, 255)
	if want := tcell.StyleDefault.Foreground(blue).Background(blue); style != want {
		t.Errorf("cell style = %v, want blue on blue", style)
	}
}
