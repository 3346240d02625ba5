// Package nav implements the kiosk navigation state machine.
//
// The controller owns which screen is showing, which screen the user came
// from, and which media (if any) is overlaying everything. All mutations go
// through the named operations so the host UI never has to reason about
// transitions itself.
package nav

import "fmt"

// Screen is a navigable view shown when no media is playing.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenSecondary
)

// String returns the screen name for logs.
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// MediaRef identifies a playable video. The empty ref means no media.
type MediaRef string

// NavigateSecondary is the sentinel media ref carried by hotspots that open
// the secondary menu instead of playing anything.
const NavigateSecondary MediaRef = "nav:secondary"

// IsNavigation reports whether the ref is a navigation sentinel rather than
// playable media.
func (m MediaRef) IsNavigation() bool {
	return m == "" || m == NavigateSecondary
}

// Affordance is the return control shown while media is playing.
type Affordance int

const (
	AffordanceNone Affordance = iota
	AffordanceHome
	AffordanceBack
)

// String returns the affordance label as shown on screen.
func (a Affordance) String() string {
	switch a {
	case AffordanceHome:
		return "Home"
	case AffordanceBack:
		return "Back"
	default:
		return "None"
	}
}

// StopReason records why active media was cleared.
type StopReason int

const (
	StopEnded StopReason = iota
	StopDismissed
	StopHome
	StopBack
)

// String returns the reason name for logs.
func (r StopReason) String() string {
	switch r {
	case StopEnded:
		return "ended"
	case StopDismissed:
		return "dismissed"
	case StopHome:
		return "home"
	case StopBack:
		return "back"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// State is the full navigation state.
type State struct {
	Current  Screen
	Previous Screen
	Media    MediaRef
}

// InitialState is the state the kiosk starts in.
func InitialState() State {
	return State{Current: ScreenMain, Previous: ScreenMain}
}

// HasMedia reports whether the playback overlay is active.
func (s State) HasMedia() bool {
	return s.Media != ""
}

// Affordance derives the return control from state. It is never stored.
func (s State) Affordance() Affordance {
	if !s.HasMedia() {
		return AffordanceNone
	}
	if s.Previous == ScreenSecondary {
		return AffordanceBack
	}
	return AffordanceHome
}

// Mode names the observable display mode for logs.
func (s State) Mode() string {
	if s.HasMedia() {
		return s.Current.String() + "+overlay"
	}
	return s.Current.String()
}
