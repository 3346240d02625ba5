package nav

// Hotspot is the part of a layout hotspot the controller needs.
type Hotspot interface {
	MediaRef() MediaRef
}

// Hooks receives the side effects of transitions. MediaStarted fires on the
// absent->present edge of active media, MediaStopped on present->absent.
type Hooks interface {
	MediaStarted(ref MediaRef)
	MediaStopped(ref MediaRef, reason StopReason)
}

// Controller owns the navigation state. It is not safe for concurrent use;
// the host must call it from a single event loop.
type Controller struct {
	state State
	hooks Hooks
}

// NewController creates a controller in the initial state. hooks may be nil.
func NewController(hooks Hooks) *Controller {
	return &Controller{
		state: InitialState(),
		hooks: hooks,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Affordance returns the return control for the active overlay.
func (c *Controller) Affordance() Affordance {
	return c.state.Affordance()
}

// SelectHotspot handles a tap on a hotspot of the visible screen.
// Navigation hotspots open the secondary menu; anything else starts media.
// Taps while media is active are ignored.
func (c *Controller) SelectHotspot(h Hotspot) bool {
	if c.state.HasMedia() {
		return false
	}
	ref := h.MediaRef()
	if ref.IsNavigation() {
		if c.state.Current == ScreenSecondary {
			return false
		}
		c.state.Current = ScreenSecondary
		return true
	}
	c.startMedia(c.state.Current, ref)
	return true
}

// SelectSecondaryAction starts media from the secondary menu.
func (c *Controller) SelectSecondaryAction(ref MediaRef) bool {
	if c.state.HasMedia() || c.state.Current != ScreenSecondary || ref.IsNavigation() {
		return false
	}
	c.startMedia(ScreenSecondary, ref)
	return true
}

// MediaEnded handles natural end of playback.
func (c *Controller) MediaEnded() bool {
	return c.returnFromMedia(StopEnded)
}

// MediaDismissed handles an explicit close of the overlay. It routes the
// same way as MediaEnded.
func (c *Controller) MediaDismissed() bool {
	return c.returnFromMedia(StopDismissed)
}

// GoBack returns to the secondary menu. Only valid while the affordance is
// Back.
func (c *Controller) GoBack() bool {
	if c.state.Affordance() != AffordanceBack {
		return false
	}
	return c.returnFromMedia(StopBack)
}

// GoHome resets to the main screen from any state.
func (c *Controller) GoHome() bool {
	prev := c.state
	c.state = InitialState()
	if prev.HasMedia() && c.hooks != nil {
		c.hooks.MediaStopped(prev.Media, StopHome)
	}
	return prev != c.state
}

func (c *Controller) startMedia(from Screen, ref MediaRef) {
	c.state.Previous = from
	c.state.Media = ref
	if c.hooks != nil {
		c.hooks.MediaStarted(ref)
	}
}

func (c *Controller) returnFromMedia(reason StopReason) bool {
	if !c.state.HasMedia() {
		return false
	}
	ref := c.state.Media
	if c.state.Previous == ScreenSecondary {
		c.state.Current = ScreenSecondary
	} else {
		c.state.Current = ScreenMain
	}
	c.state.Media = ""
	if c.hooks != nil {
		c.hooks.MediaStopped(ref, reason)
	}
	return true
}
