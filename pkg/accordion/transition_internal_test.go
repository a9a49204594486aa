package accordion

import (
	"math"
	"testing"
)

func TestEaseInOut(t *testing.T) {
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-4 }

	if easeInOut(0) != 0 || easeInOut(1) != 1 {
		t.Fatalf("endpoints: f(0)=%v f(1)=%v", easeInOut(0), easeInOut(1))
	}
	if easeInOut(-1) != 0 || easeInOut(2) != 1 {
		t.Error("inputs outside [0,1] should clamp")
	}
	if !near(easeInOut(0.5), 0.5) {
		t.Errorf("f(0.5) = %v, want 0.5", easeInOut(0.5))
	}

	// The curve is symmetric about (0.5, 0.5) and eases in.
	for _, x := range []float64{0.1, 0.2, 0.3, 0.4} {
		if !near(easeInOut(x)+easeInOut(1-x), 1) {
			t.Errorf("f(%v)+f(%v) = %v, want 1", x, 1-x, easeInOut(x)+easeInOut(1-x))
		}
		if easeInOut(x) >= x {
			t.Errorf("f(%v) = %v, want slower than linear", x, easeInOut(x))
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := easeInOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestItemStyle(t *testing.T) {
	it := &Item{}
	if got := it.style(DefaultDuration); got != "transition-duration: 300ms" {
		t.Errorf("style = %q", got)
	}

	h := 12.5
	it.height = &h
	if got := it.style(DefaultDuration); got != "transition-duration: 300ms; height: 12.50px" {
		t.Errorf("style = %q", got)
	}
}

func TestRenderedHeight(t *testing.T) {
	h := 40.0
	tests := []struct {
		name string
		item Item
		want float64
	}{
		{"collapsed", Item{}, 0},
		{"expanded", Item{expanded: true}, 120},
		{"disabled collapsed", Item{disabled: true}, 120},
		{"animating", Item{expanded: true, height: &h}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.RenderedHeight(120); got != tt.want {
				t.Errorf("RenderedHeight = %v, want %v", got, tt.want)
			}
		})
	}
}
