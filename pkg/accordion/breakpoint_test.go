package accordion_test

import (
	"testing"

	"github.com/vango-dev/accordion/pkg/accordion"
)

func TestDisabled(t *testing.T) {
	px := accordion.Px

	tests := []struct {
		name  string
		width float64
		above *float64
		below *float64
		want  bool
	}{
		{"no thresholds", 500, nil, nil, false},
		{"above: narrower", 799, px(800), nil, false},
		{"above: equal", 800, px(800), nil, true},
		{"above: wider", 900, px(800), nil, true},
		{"below: wider", 601, nil, px(600), false},
		{"below: equal", 600, nil, px(600), true},
		{"below: narrower", 320, nil, px(600), true},
		{"both: between", 700, px(800), px(600), false},
		{"both: above", 1000, px(800), px(600), true},
		{"both: below", 500, px(800), px(600), true},
		// Inverted ranges are taken as configured: above wins first.
		{"inverted: overlap", 500, px(400), px(800), true},
		{"inverted: under both", 300, px(400), px(800), true},
		{"inverted: over both", 900, px(400), px(800), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := accordion.Disabled(tt.width, tt.above, tt.below); got != tt.want {
				t.Errorf("Disabled(%v) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}
