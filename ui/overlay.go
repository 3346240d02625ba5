package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/harbourkiosk/nav"
	"github.com/user-none/harbourkiosk/ui/style"
)

// overlayButton is one return control on the media overlay
type overlayButton struct {
	action nav.Affordance
	rect   image.Rectangle
}

// overlayButtons lays out the return controls along the bottom-left corner.
// The affordance comes first; Home is always reachable as a second button
// when the affordance is Back.
func overlayButtons(aff nav.Affordance, screenW, screenH int) []overlayButton {
	if aff == nav.AffordanceNone {
		return nil
	}

	actions := []nav.Affordance{aff}
	if aff == nav.AffordanceBack {
		actions = append(actions, nav.AffordanceHome)
	}

	buttons := make([]overlayButton, 0, len(actions))
	x := style.OverlayMargin
	y := screenH - style.OverlayMargin - style.OverlayButtonHeight
	for _, a := range actions {
		buttons = append(buttons, overlayButton{
			action: a,
			rect:   image.Rect(x, y, x+style.OverlayButtonWidth, y+style.OverlayButtonHeight),
		})
		x += style.OverlayButtonWidth + style.DefaultSpacing
	}
	return buttons
}

// MediaOverlay is the full-screen playback view shown above the current
// screen while media is active.
type MediaOverlay struct {
	affordance nav.Affordance
	title      string

	// Cached layout info for hit testing
	buttons []overlayButton
	hover   int
}

// NewMediaOverlay creates a hidden overlay
func NewMediaOverlay() *MediaOverlay {
	return &MediaOverlay{hover: -1}
}

// Update sets what the overlay shows. Call it before HitTest and Draw on
// each frame.
func (o *MediaOverlay) Update(aff nav.Affordance, title string, screenW, screenH int) {
	if aff != o.affordance || o.buttons == nil {
		o.buttons = overlayButtons(aff, screenW, screenH)
		o.hover = -1
	}
	o.affordance = aff
	o.title = title
}

// HitTest returns the return control under p
func (o *MediaOverlay) HitTest(p image.Point) (nav.Affordance, bool) {
	for _, b := range o.buttons {
		if p.In(b.rect) {
			return b.action, true
		}
	}
	return nav.AffordanceNone, false
}

// SetHover highlights the button under the cursor
func (o *MediaOverlay) SetHover(p image.Point, ok bool) {
	o.hover = -1
	if !ok {
		return
	}
	for i, b := range o.buttons {
		if p.In(b.rect) {
			o.hover = i
			return
		}
	}
}

// Draw renders the overlay
func (o *MediaOverlay) Draw(screen *ebiten.Image) {
	if o.affordance == nav.AffordanceNone {
		return
	}

	screen.Fill(style.Black)

	bounds := screen.Bounds()
	if o.title != "" {
		textOpts := &text.DrawOptions{}
		textOpts.GeoM.Translate(float64(bounds.Dx()/2), float64(bounds.Dy()/2))
		textOpts.PrimaryAlign = text.AlignCenter
		textOpts.SecondaryAlign = text.AlignCenter
		textOpts.ColorScale.ScaleWithColor(style.TextSecondary)
		text.Draw(screen, o.title, style.BoldFace(style.TitleSize), textOpts)
	}

	for i, b := range o.buttons {
		drawReturnButton(screen, b.rect, b.action.String(), i == o.hover)
	}
}

// drawReturnButton draws a Home or Back control
func drawReturnButton(screen *ebiten.Image, rect image.Rectangle, label string, hover bool) {
	// White at 90%, solid on hover
	bg := color.NRGBA{0xff, 0xff, 0xff, 0xe6}
	if hover {
		bg.A = 0xff
	}
	style.FillRect(screen, rect, bg)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(rect.Min.X+rect.Dx()/2), float64(rect.Min.Y+rect.Dy()/2))
	textOpts.PrimaryAlign = text.AlignCenter
	textOpts.SecondaryAlign = text.AlignCenter
	textOpts.ColorScale.ScaleWithColor(style.Black)
	text.Draw(screen, label, style.FontFace(style.ButtonSize), textOpts)
}
