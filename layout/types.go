// Package layout holds the static hotspot table the kiosk is driven by.
//
// A layout is loaded once at startup, validated, and never mutated. Hotspot
// positions are percentages of the design surface; sizes are design pixels.
package layout

import (
	"image"
	"math"
	"strings"

	"github.com/user-none/harbourkiosk/nav"
)

// CurrentVersion is the layout file version this build writes.
const CurrentVersion = 1

// Layout represents a kiosk layout stored in layout.json
type Layout struct {
	Version    int        `json:"version"`
	Background string     `json:"background"`         // Main screen image, relative to the layout file
	Hotspots   []Hotspot  `json:"hotspots"`           // Main screen hotspots, in draw order
	Secondary  *Secondary `json:"secondary,omitempty"` // "Know more" menu, nil when unused
}

// Secondary describes the second-level menu reached from a navigation hotspot.
type Secondary struct {
	Title      string    `json:"title"`
	Background string    `json:"background,omitempty"` // Empty = draw actions as a button list
	Actions    []Hotspot `json:"actions"`
}

// Hotspot is a tappable region mapped to a video or to navigation
type Hotspot struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`      // Left edge, percent of design width
	Y      float64 `json:"y"`      // Top edge, percent of design height
	Width  float64 `json:"width"`  // Design pixels
	Height float64 `json:"height"` // Design pixels
	Media  string  `json:"media"`  // Path, URL, or "nav:secondary"
	Label  string  `json:"label"`
}

// MediaRef implements nav.Hotspot.
func (h Hotspot) MediaRef() nav.MediaRef {
	return nav.MediaRef(h.Media)
}

// IsNavigation reports whether tapping the hotspot opens the secondary menu.
func (h Hotspot) IsNavigation() bool {
	return h.MediaRef().IsNavigation()
}

// Rect returns the hotspot bounds on a designW x designH surface.
func (h Hotspot) Rect(designW, designH int) image.Rectangle {
	x0 := int(math.Round(h.X * float64(designW) / 100))
	y0 := int(math.Round(h.Y * float64(designH) / 100))
	return image.Rect(x0, y0, x0+int(math.Round(h.Width)), y0+int(math.Round(h.Height)))
}

// HasBackground reports whether the secondary menu is drawn as hotspots over
// an image rather than as a button list.
func (s *Secondary) HasBackground() bool {
	return s != nil && s.Background != ""
}

// HasNavigation reports whether any main hotspot opens the secondary menu.
func (l *Layout) HasNavigation() bool {
	for _, h := range l.Hotspots {
		if h.IsNavigation() {
			return true
		}
	}
	return false
}

// MediaRefs returns every playable media reference in table order, without
// duplicates.
func (l *Layout) MediaRefs() []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(hs []Hotspot) {
		for _, h := range hs {
			if h.IsNavigation() || seen[h.Media] {
				continue
			}
			seen[h.Media] = true
			refs = append(refs, h.Media)
		}
	}
	add(l.Hotspots)
	if l.Secondary != nil {
		add(l.Secondary.Actions)
	}
	return refs
}

// IsRemote reports whether a media ref or image path is an http(s) URL.
func IsRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
