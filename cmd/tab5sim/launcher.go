package main

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/tab5ui/imlib"
	"github.com/tab5ui/imlib/internal/cache"
	"github.com/tab5ui/imlib/motion"
)

// App is a launcher entry.
type App struct {
	Name  string
	Icon  iconKind
	Color color.RGBA
}

var defaultApps = []App{
	{"Clock", iconClock, color.RGBA{242, 153, 74, 255}},
	{"Camera", iconCamera, color.RGBA{86, 204, 242, 255}},
	{"Mail", iconMail, color.RGBA{47, 128, 237, 255}},
	{"Starred", iconStar, color.RGBA{242, 201, 76, 255}},
	{"Apps", iconGrid, color.RGBA{155, 81, 224, 255}},
	{"Wi-Fi", iconWifi, color.RGBA{39, 174, 96, 255}},
	{"Music", iconMusic, color.RGBA{235, 87, 87, 255}},
	{"Alarm", iconClock, color.RGBA{242, 120, 75, 255}},
	{"Photos", iconCamera, color.RGBA{111, 207, 151, 255}},
	{"Inbox", iconMail, color.RGBA{45, 156, 219, 255}},
	{"Radio", iconMusic, color.RGBA{187, 107, 217, 255}},
	{"Network", iconWifi, color.RGBA{33, 150, 83, 255}},
}

const (
	cols       = 3
	rows       = 3
	perPage    = cols * rows
	headerH    = 28
	gap        = 16
	labelH     = 20
	cardRadius = 14
)

var (
	background = imlib.RGB(18, 18, 24)
	foreground = imlib.RGB(235, 235, 240)
	dim        = imlib.RGB(90, 90, 104)
)

type iconKey struct {
	kind iconKind
	size int
}

// icons holds rasterised icons shared by all launchers.
var icons = cache.New[iconKey, *image.RGBA](64)

func renderIcon(kind iconKind, size int) (*image.RGBA, error) {
	return icons.GetOrCreate(iconKey{kind, size}, func() (*image.RGBA, error) {
		return rasterizeSVG(iconSVG(kind), size)
	})
}

// tile is the pre-rendered artwork of one app.
type tile struct {
	name string
	card *image.RGBA
	icon *image.RGBA
}

// command changes the visible page. Relative commands add page to the
// current page.
type command struct {
	page     int
	relative bool
}

// Launcher draws a paged grid of app tiles. Page changes slide on a
// spring and pulse the page indicator. It is not safe for concurrent use.
type Launcher struct {
	width, height int
	tileSize      int
	tiles         []tile
	text          *imlib.TextRenderer

	page   int
	offset float64
	slide  *motion.Animate
	pulse  *motion.Animate
}

// NewLauncher pre-renders the tiles of apps for a width×height screen.
func NewLauncher(width, height int, apps []App, text *imlib.TextRenderer) (*Launcher, error) {
	size := (width - (cols+1)*gap) / cols
	if size <= 0 {
		return nil, fmt.Errorf("tab5sim: screen %dx%d too small", width, height)
	}

	l := &Launcher{width: width, height: height, tileSize: size, text: text}
	for _, app := range apps {
		icon, err := renderIcon(app.Icon, size*3/5)
		if err != nil {
			return nil, err
		}
		l.tiles = append(l.tiles, tile{
			name: app.Name,
			card: cardImage(size, size, cardRadius, app.Color),
			icon: icon,
		})
	}

	spring := motion.NewSpring(0, 0)
	spring.Options.Duration = 450
	spring.Options.Bounce = 0.2
	l.slide = motion.NewAnimate(spring, motion.WithOnUpdate(func(v float64) {
		l.offset = v
	}))

	l.pulse = motion.NewAnimate(
		motion.NewEasingGenerator(0, 1, 0.15, motion.EaseOut.Func()),
		motion.WithRepeat(1),
		motion.WithRepeatType(motion.Reverse),
	)
	return l, nil
}

// Pages returns the number of pages.
func (l *Launcher) Pages() int {
	return max(1, (len(l.tiles)+perPage-1)/perPage)
}

// Page returns the current target page.
func (l *Launcher) Page() int { return l.page }

// Apply executes cmd at time now.
func (l *Launcher) Apply(cmd command, now time.Duration) {
	page := cmd.page
	if cmd.relative {
		page += l.page
	}
	l.SetPage(page, now)
}

// SetPage slides to page, clamped to the valid range.
func (l *Launcher) SetPage(page int, now time.Duration) {
	page = max(0, min(page, l.Pages()-1))
	if page == l.page {
		return
	}
	l.page = page
	l.slide.Retarget(float64(page*l.width), now)
	l.pulse.Start(now)
}

// Render draws the launcher as of time now.
func (l *Launcher) Render(img *imlib.Image, now time.Duration) {
	l.slide.Update(now)
	l.pulse.Update(now)

	img.Clear(background)
	l.drawHeader(img)

	first := int(l.offset) / l.width
	for p := max(0, first); p <= first+1 && p < l.Pages(); p++ {
		l.drawPage(img, p, p*l.width-int(l.offset))
	}
	l.drawIndicator(img)
}

func (l *Launcher) drawHeader(img *imlib.Image) {
	title := fmt.Sprintf("Tab5 • %d/%d", l.page+1, l.Pages())
	l.text.DrawString(img, gap/2, 6, title, foreground, imlib.TextStyle{})

	// Battery outline with a fixed charge level.
	bx := l.width - gap/2 - 26
	img.DrawRectangle(bx, 8, 22, 12, foreground, 1, false)
	img.DrawRectangle(bx+22, 11, 3, 6, foreground, 0, true)
	img.DrawRectangle(bx+2, 10, 14, 8, foreground, 0, true)

	img.DrawLine(0, headerH-1, l.width-1, headerH-1, dim, 1)
}

func (l *Launcher) drawPage(img *imlib.Image, page, x0 int) {
	label := imlib.TextStyle{Monospace: true}
	for i := range perPage {
		idx := page*perPage + i
		if idx >= len(l.tiles) {
			return
		}
		t := &l.tiles[idx]
		x := x0 + gap + (i%cols)*(l.tileSize+gap)
		y := headerH + gap + (i/cols)*(l.tileSize+gap+labelH)

		img.Blit(t.card, image.Pt(x, y))
		inset := (l.tileSize - t.icon.Bounds().Dx()) / 2
		img.Blit(t.icon, image.Pt(x+inset, y+inset))

		w := labelWidth(t.name)
		l.text.DrawString(img, x+(l.tileSize-w)/2, y+l.tileSize+2, t.name, foreground, label)
	}
}

func (l *Launcher) drawIndicator(img *imlib.Image) {
	n := l.Pages()
	const spacing = 16
	y := l.height - gap
	x := l.width/2 - (n-1)*spacing/2
	for p := range n {
		if p == l.page {
			r := 4 + int(3*l.pulse.Value()+0.5)
			img.DrawCircle(x+p*spacing, y, r, foreground, 0, true)
			continue
		}
		img.DrawCircle(x+p*spacing, y, 4, dim, 1, false)
	}
}

// labelWidth returns the monospace advance of name: 8 pixels per
// printable ASCII rune and 16 per three-byte rune. Other runes are
// skipped by the renderer and take no space.
func labelWidth(name string) int {
	w := 0
	for i := 0; i < len(name); {
		cp, n := imlib.DecodeUTF8(name[i:])
		if n == 0 {
			i++
			continue
		}
		i += n
		switch {
		case n == 1 && cp >= 0x20 && cp <= 0x7E:
			w += 8
		case n == 3:
			w += 16
		}
	}
	return w
}
