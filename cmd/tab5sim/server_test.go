package main

import (
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tab5ui/imlib"
)

func postTarget(t *testing.T, body string, cmds chan command) *http.Response {
	t.Helper()
	app := newServer(NewDisplay(8, 8), 2, cmds)
	req := httptest.NewRequest(http.MethodPost, "/target", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() = %v", err)
	}
	return resp
}

func TestServerTarget(t *testing.T) {
	cmds := make(chan command, 1)
	resp := postTarget(t, `{"page": 1}`, cmds)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	select {
	case cmd := <-cmds:
		if cmd != (command{page: 1}) {
			t.Errorf("command = %+v, want page 1", cmd)
		}
	default:
		t.Fatal("no command forwarded")
	}
}

func TestServerTargetRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"out of range", `{"page": 2}`, http.StatusBadRequest},
		{"negative", `{"page": -1}`, http.StatusBadRequest},
		{"missing page", `{}`, http.StatusBadRequest},
		{"bad json", `{"page":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := make(chan command, 1)
			resp := postTarget(t, tt.body, cmds)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
			if len(cmds) != 0 {
				t.Error("rejected request forwarded a command")
			}
		})
	}
}

func TestServerTargetBusy(t *testing.T) {
	resp := postTarget(t, `{"page": 0}`, make(chan command))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestServerFrame(t *testing.T) {
	d := NewDisplay(16, 12)
	d.Draw(func(img *imlib.Image) {
		img.Clear(imlib.RGB(255, 0, 0))
	})
	app := newServer(d, 1, make(chan command))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/frame", nil))
	if err != nil {
		t.Fatal(err)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("frame bounds = %v, want 16×12", b)
	}
	if r, g, b, _ := img.At(3, 3).RGBA(); r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("frame pixel = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
}

func TestServerIndex(t *testing.T) {
	app := newServer(NewDisplay(8, 8), 1, make(chan command))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `src="/frame"`) {
		t.Error("index page should embed the frame")
	}
}
