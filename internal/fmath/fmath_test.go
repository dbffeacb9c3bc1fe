package fmath

import (
	"math"
	"testing"
)

func TestFloorRound(t *testing.T) {
	tests := []struct {
		in           float32
		floor, round int
	}{
		{0, 0, 0},
		{1.5, 1, 2},
		{-1.5, -2, -2},
		{2.0, 2, 2},
		{-2.0, -2, -2},
		{0.49, 0, 0},
		{-0.49, -1, 0},
	}
	for _, tt := range tests {
		if got := Floor(tt.in); got != tt.floor {
			t.Errorf("Floor(%v) = %d, want %d", tt.in, got, tt.floor)
		}
		if got := Round(tt.in); got != tt.round {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.round)
		}
	}
}

func TestAtan(t *testing.T) {
	for x := float32(-20); x <= 20; x += 0.125 {
		want := math.Atan(float64(x))
		got := float64(Atan(x))
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("Atan(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestDiv(t *testing.T) {
	if got := Div(3, 0); got != 0 {
		t.Errorf("Div(3, 0) = %v, want 0", got)
	}
	if got := Div(3, 2); got != 1.5 {
		t.Errorf("Div(3, 2) = %v, want 1.5", got)
	}
}
