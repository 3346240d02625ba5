package ui

import (
	"image"
	"testing"
)

func down(x, y int) PointerSample { return PointerSample{Down: true, Pos: image.Pt(x, y)} }

var up = PointerSample{}

func feedAll(d *TapDetector, samples ...PointerSample) []image.Point {
	var taps []image.Point
	for _, s := range samples {
		if p, ok := d.Feed(s); ok {
			taps = append(taps, p)
		}
	}
	return taps
}

func TestTapDetector(t *testing.T) {
	twoFingers := PointerSample{Down: true, Pos: image.Pt(100, 100), Touches: 2}
	rightHeld := PointerSample{Down: true, Pos: image.Pt(100, 100), Secondary: true}
	wheel := PointerSample{Down: true, Pos: image.Pt(100, 100), Wheel: true}

	tests := []struct {
		name     string
		suppress bool
		samples  []PointerSample
		want     []image.Point
	}{
		{"simple tap", true, []PointerSample{down(100, 100), up}, []image.Point{{100, 100}}},
		{"tap at release position", true, []PointerSample{down(100, 100), down(110, 105), up}, []image.Point{{110, 105}}},
		{"no release no tap", true, []PointerSample{down(100, 100), down(100, 100)}, nil},
		{"release without press", true, []PointerSample{up, up}, nil},
		{"two taps", true, []PointerSample{down(1, 1), up, down(5, 5), up}, []image.Point{{1, 1}, {5, 5}}},
		{"second finger cancels", true, []PointerSample{down(100, 100), twoFingers, down(100, 100), up}, nil},
		{"pinch from the start", true, []PointerSample{twoFingers, up}, nil},
		{"right button cancels", true, []PointerSample{down(100, 100), rightHeld, up}, nil},
		{"wheel cancels", true, []PointerSample{down(100, 100), wheel, up}, nil},
		{"swipe cancels", true, []PointerSample{down(100, 100), down(400, 100), up}, nil},
		{"cancel only lasts one press", true, []PointerSample{twoFingers, up, down(3, 3), up}, []image.Point{{3, 3}}},
		{"gestures pass when not suppressed", false, []PointerSample{down(100, 100), twoFingers, up}, []image.Point{{100, 100}}},
		{"swipe passes when not suppressed", false, []PointerSample{down(100, 100), down(400, 100), up}, []image.Point{{400, 100}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewTapDetector(tc.suppress)
			got := feedAll(d, tc.samples...)
			if len(got) != len(tc.want) {
				t.Fatalf("taps = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("tap %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestTapDetectorReset(t *testing.T) {
	d := NewTapDetector(true)
	d.Feed(down(10, 10))
	d.Reset()
	if _, ok := d.Feed(up); ok {
		t.Error("tap fired for a press dropped by Reset")
	}
}
