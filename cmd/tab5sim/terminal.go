package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/tab5ui/imlib"
)

// terminal previews frames with half-block characters, two image rows per
// cell.
type terminal struct {
	screen tcell.Screen
}

func newTerminal() (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &terminal{screen: screen}, nil
}

// Close restores the terminal.
func (t *terminal) Close() {
	t.screen.Fini()
}

// Paint draws img scaled to fill the screen.
func (t *terminal) Paint(img *imlib.Image) {
	cols, rows := t.screen.Size()
	for y := range rows {
		for x := range cols {
			top, bottom := cellColors(img, x, y, cols, rows)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	t.screen.Show()
}

// cellColors samples the two pixels shown by terminal cell (x, y) on a
// cols×rows screen.
func cellColors(img *imlib.Image, x, y, cols, rows int) (top, bottom tcell.Color) {
	sx := x * img.Width / cols
	sy0 := (2 * y) * img.Height / (2 * rows)
	sy1 := (2*y + 1) * img.Height / (2 * rows)
	return sample(img, sx, sy0), sample(img, sx, sy1)
}

func sample(img *imlib.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Poll turns key presses into page commands until ctx is done. q, Escape
// and Ctrl-C call quit.
func (t *terminal) Poll(ctx context.Context, cmds chan<- command, quit func()) {
	for ctx.Err() == nil {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				quit()
				return
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				cmds <- command{page: -1, relative: true}
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				cmds <- command{page: 1, relative: true}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
