package clip

import "testing"

func TestLineClip(t *testing.T) {
	tests := []struct {
		name string
		in   Line
		want Line
		ok   bool
	}{
		{"inside", Line{1, 1, 5, 5}, Line{1, 1, 5, 5}, true},
		{"point inside", Line{3, 3, 3, 3}, Line{3, 3, 3, 3}, true},
		{"left of box", Line{-10, 2, -1, 8}, Line{-10, 2, -1, 8}, false},
		{"below box", Line{0, 20, 9, 25}, Line{0, 20, 9, 25}, false},
		{"horizontal crossing", Line{-5, 4, 15, 4}, Line{0, 4, 9, 4}, true},
		{"vertical crossing", Line{2, -3, 2, 30}, Line{2, 0, 2, 9}, true},
		{"diagonal crossing", Line{-5, -5, 15, 15}, Line{0, 0, 9, 9}, true},
		{"reversed", Line{15, 4, -5, 4}, Line{9, 4, 0, 4}, true},
		{"corner miss", Line{-5, 3, 3, -5}, Line{-5, 3, 3, -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.in
			ok := l.Clip(0, 0, 10, 10)
			if ok != tt.ok {
				t.Fatalf("Clip() = %v, want %v", ok, tt.ok)
			}
			if l != tt.want {
				t.Errorf("Clip() line = %+v, want %+v", l, tt.want)
			}
		})
	}
}

func TestLineClipEmptyRect(t *testing.T) {
	l := Line{0, 0, 1, 1}
	if l.Clip(0, 0, 0, 10) {
		t.Error("Clip() against empty rectangle should fail")
	}
}

func TestLineClipStaysInBounds(t *testing.T) {
	for x1 := -20; x1 <= 40; x1 += 7 {
		for y2 := -20; y2 <= 40; y2 += 5 {
			l := Line{x1, -13, 37, y2}
			if !l.Clip(0, 0, 20, 20) {
				continue
			}
			for _, v := range []int{l.X1, l.Y1, l.X2, l.Y2} {
				if v < 0 || v > 19 {
					t.Fatalf("clipped line %+v leaves the box", l)
				}
			}
		}
	}
}
