package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/harbourkiosk/layout"
	"github.com/user-none/harbourkiosk/ui/style"
)

type hotspotView struct {
	spot  layout.Hotspot
	rect  image.Rectangle
	label string
}

// HotspotLayer draws a set of hotspots over a background and hit tests taps
// against them.
type HotspotLayer struct {
	views   []hotspotView
	show    bool
	opacity float64
	hover   int
}

// NewHotspotLayer positions spots on a designW x designH surface
func NewHotspotLayer(spots []layout.Hotspot, designW, designH int, show bool, opacity float64) *HotspotLayer {
	l := &HotspotLayer{
		views:   make([]hotspotView, 0, len(spots)),
		show:    show,
		opacity: opacity,
		hover:   -1,
	}
	for _, s := range spots {
		label, _ := style.TruncateEnd(s.Label, style.LabelMaxChars)
		l.views = append(l.views, hotspotView{
			spot:  s,
			rect:  s.Rect(designW, designH),
			label: label,
		})
	}
	return l
}

// HitTest returns the topmost hotspot under p. Later hotspots draw on top.
func (l *HotspotLayer) HitTest(p image.Point) (layout.Hotspot, bool) {
	if i := l.indexAt(p); i >= 0 {
		return l.views[i].spot, true
	}
	return layout.Hotspot{}, false
}

// SetHover highlights the hotspot under the cursor
func (l *HotspotLayer) SetHover(p image.Point, ok bool) {
	if !ok {
		l.hover = -1
		return
	}
	l.hover = l.indexAt(p)
}

func (l *HotspotLayer) indexAt(p image.Point) int {
	for i := len(l.views) - 1; i >= 0; i-- {
		if p.In(l.views[i].rect) {
			return i
		}
	}
	return -1
}

// Draw renders the hotspots. Invisible hotspots still hit test.
func (l *HotspotLayer) Draw(screen *ebiten.Image) {
	if !l.show {
		return
	}

	face := style.FontFace(style.LabelSize)
	fill := style.WithAlpha(color.NRGBA{0xff, 0xff, 0xff, 0xff}, l.opacity)
	hoverFill := style.WithAlpha(color.NRGBA{0xff, 0xff, 0xff, 0xff}, l.opacity/3)
	labelColor := color.NRGBA{0x00, 0x00, 0x00, 0x66} // 40% black

	for i, v := range l.views {
		if i == l.hover {
			style.FillRect(screen, v.rect, hoverFill)
		} else {
			style.FillRect(screen, v.rect, fill)
		}

		textOpts := &text.DrawOptions{}
		textOpts.GeoM.Translate(float64(v.rect.Min.X+v.rect.Dx()/2), float64(v.rect.Min.Y+v.rect.Dy()/2))
		textOpts.PrimaryAlign = text.AlignCenter
		textOpts.SecondaryAlign = text.AlignCenter
		textOpts.ColorScale.ScaleWithColor(labelColor)
		text.Draw(screen, v.label, face, textOpts)
	}
}
