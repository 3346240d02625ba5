package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample is one frame of pointer input in design coordinates
type PointerSample struct {
	Down      bool        // Primary touch or left button held
	Pos       image.Point // Position of the primary pointer
	Touches   int         // Active touch points
	Secondary bool        // Right or middle mouse button held
	Wheel     bool        // Wheel or trackpad scroll this frame
}

// Gesture reports whether the sample is anything other than a single
// primary pointer.
func (s PointerSample) Gesture() bool {
	return s.Touches > 1 || s.Secondary || s.Wheel
}

// DefaultDragThreshold is how far a press may travel before it stops
// counting as a tap, in design pixels.
const DefaultDragThreshold = 24

// TapDetector turns pointer samples into taps. A tap fires on release at the
// last pointer position. While Suppress is set, a press that saw a gesture
// or travelled past DragThreshold yields no tap.
type TapDetector struct {
	Suppress      bool
	DragThreshold int

	pressed   bool
	cancelled bool
	start     image.Point
	last      image.Point
}

// NewTapDetector creates a detector with the default drag threshold
func NewTapDetector(suppress bool) *TapDetector {
	return &TapDetector{
		Suppress:      suppress,
		DragThreshold: DefaultDragThreshold,
	}
}

// Feed consumes one sample and returns the tap position when a tap completes
func (d *TapDetector) Feed(s PointerSample) (image.Point, bool) {
	if s.Down {
		if !d.pressed {
			d.pressed = true
			d.cancelled = false
			d.start = s.Pos
		}
		d.last = s.Pos
		if d.Suppress && (s.Gesture() || d.travelled()) {
			d.cancelled = true
		}
		return image.Point{}, false
	}

	if !d.pressed {
		return image.Point{}, false
	}
	d.pressed = false
	if d.cancelled {
		d.cancelled = false
		return image.Point{}, false
	}
	return d.last, true
}

// Reset drops any press in progress
func (d *TapDetector) Reset() {
	d.pressed = false
	d.cancelled = false
}

func (d *TapDetector) travelled() bool {
	if d.DragThreshold <= 0 {
		return false
	}
	dx := d.last.X - d.start.X
	dy := d.last.Y - d.start.Y
	return dx*dx+dy*dy > d.DragThreshold*d.DragThreshold
}

// KeyActions are the keyboard shortcuts a technician can use on an attached
// keyboard.
type KeyActions struct {
	Dismiss bool // ESC closes the overlay
	Home    bool // Home key
	Quit    bool // Ctrl+Q
}

// InputManager samples Ebitengine input once per frame.
type InputManager struct {
	touchIDs []ebiten.TouchID
}

// NewInputManager creates a new input manager
func NewInputManager() *InputManager {
	return &InputManager{}
}

// Sample reads the pointer state. Touch takes priority over the mouse.
func (im *InputManager) Sample() PointerSample {
	im.touchIDs = ebiten.AppendTouchIDs(im.touchIDs[:0])
	if len(im.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(im.touchIDs[0])
		return PointerSample{
			Down:    true,
			Pos:     image.Pt(x, y),
			Touches: len(im.touchIDs),
		}
	}

	x, y := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return PointerSample{
		Down:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pos:       image.Pt(x, y),
		Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Wheel:     wx != 0 || wy != 0,
	}
}

// Hover returns the cursor position, or false on touch-only input
func (im *InputManager) Hover() (image.Point, bool) {
	if len(im.touchIDs) > 0 {
		return image.Point{}, false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y), true
}

// Keys returns the keyboard shortcuts pressed this frame
func (im *InputManager) Keys() KeyActions {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	return KeyActions{
		Dismiss: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Home:    inpututil.IsKeyJustPressed(ebiten.KeyHome),
		Quit:    ctrl && inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
