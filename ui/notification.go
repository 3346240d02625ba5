package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/harbourkiosk/ui/style"
)

// Notification displays temporary messages on screen
type Notification struct {
	message   string
	startTime time.Time
	duration  time.Duration
	fontFace  text.Face
	now       func() time.Time
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{
		fontFace: style.FontFace(style.LabelSize),
		now:      time.Now,
	}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.message = message
	n.startTime = n.now()
	n.duration = duration
}

// ShowDefault displays a notification with the default duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, style.NotificationDuration)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	if n.message == "" {
		return false
	}
	return n.now().Sub(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.message = ""
}

// Draw renders the notification
func (n *Notification) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}

	bounds := screen.Bounds()
	textWidth, textHeight := text.Measure(n.message, n.fontFace, 0)

	padding := style.ButtonPaddingMedium
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	// Position: bottom-right
	margin := style.OverlayMargin
	bgX := bounds.Dx() - bgWidth - margin
	bgY := bounds.Dy() - bgHeight - margin

	// Black at 60% opacity
	style.FillRect(screen, image.Rect(bgX, bgY, bgX+bgWidth, bgY+bgHeight), color.NRGBA{0, 0, 0, 153})

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, n.message, n.fontFace, textOpts)
}
