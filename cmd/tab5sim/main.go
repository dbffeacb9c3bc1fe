// Command tab5sim simulates a Tab5 launcher screen.
//
// The screen is an RGB565 framebuffer drawn with imlib and animated with
// motion springs. Frames are served over HTTP and can be previewed in the
// terminal:
//
//	tab5sim -addr :8081 -tui
//
// GET / shows a live view, GET /frame returns the current frame as PNG and
// POST /target with {"page": n} slides to page n.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/tab5ui/imlib"
	"github.com/tab5ui/imlib/motion"
)

func main() {
	var (
		addr    = flag.String("addr", ":8081", "HTTP listen address, empty to disable")
		width   = flag.Int("width", 320, "screen width")
		height  = flag.Int("height", 480, "screen height")
		fps     = flag.Int("fps", 30, "frames per second")
		tui     = flag.Bool("tui", false, "preview the screen in the terminal")
		demo    = flag.Duration("demo", 0, "flip pages automatically at this interval")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		imlib.SetLogger(l)
		motion.SetLogger(l)
		defer logIconStats(l)
	}

	fonts, err := loadFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	launcher, err := NewLauncher(*width, *height, defaultApps, imlib.NewTextRenderer(fonts))
	if err != nil {
		log.Fatalf("Failed to build launcher: %v", err)
	}
	display := NewDisplay(*width, *height)
	cmds := make(chan command, 8)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *addr != "" {
		app := newServer(display, launcher.Pages(), cmds)
		go func() {
			if err := app.Listen(*addr); err != nil {
				log.Printf("HTTP server stopped: %v", err)
			}
		}()
		defer func() {
			_ = app.Shutdown()
		}()
		log.Printf("Serving frames on %s\n", *addr)
	}

	var term *terminal
	if *tui {
		if term, err = newTerminal(); err != nil {
			log.Fatalf("Failed to open terminal: %v", err)
		}
		defer term.Close()
		go term.Poll(ctx, cmds, stop)
	}

	run(ctx, display, launcher, cmds, *fps, *demo, term)
}

// loadFonts builds a registry with the default Latin table and Go Regular
// for general punctuation and currency symbols.
func loadFonts() (*imlib.FontRegistry, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()
	return imlib.NewFontRegistry(imlib.WithWideFace(face, imlib.RuneRange{Lo: 0x2000, Hi: 0x20FF}))
}

// logIconStats reports the icon cache counters at Debug level.
func logIconStats(l *slog.Logger) {
	st := icons.Stats()
	l.Debug("tab5sim: icon cache",
		"entries", st.Len,
		"limit", st.Limit,
		"hits", st.Hits,
		"misses", st.Misses,
		"evictions", st.Evictions,
		"hit_rate", st.HitRate())
}

// run draws frames at fps until ctx is done.
func run(ctx context.Context, d *Display, l *Launcher, cmds <-chan command, fps int, demo time.Duration, term *terminal) {
	start := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	var lastFlip time.Duration
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-cmds:
			l.Apply(cmd, time.Since(start))
		case <-ticker.C:
			now := time.Since(start)
			if demo > 0 && now-lastFlip >= demo {
				lastFlip = now
				l.SetPage((l.Page()+1)%l.Pages(), now)
			}
			d.Draw(func(img *imlib.Image) {
				l.Render(img, now)
			})
			if term != nil {
				term.Paint(d.Snapshot())
			}
		}
	}
}
