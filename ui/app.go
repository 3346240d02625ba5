// Package ui is the Ebitengine front end of the kiosk.
package ui

import (
	"context"
	"errors"
	"image"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"

	"github.com/user-none/harbourkiosk/layout"
	"github.com/user-none/harbourkiosk/logging"
	"github.com/user-none/harbourkiosk/media"
	"github.com/user-none/harbourkiosk/nav"
	"github.com/user-none/harbourkiosk/ui/screens"
	"github.com/user-none/harbourkiosk/ui/storage"
)

// Name is the window title
const Name = "Harbour Kiosk"

// AppState is the top level mode of the app
type AppState int

const (
	StateKiosk AppState = iota
	StateError
)

// Options configures a new App
type Options struct {
	Config *storage.Config
	Fs     afero.Fs
	Player media.Player

	// Layout is the validated layout to show. When LayoutErr is set instead
	// the app starts on the error screen.
	Layout     *layout.Layout
	LayoutPath string
	LayoutErr  error
}

// App is the main application struct that implements ebiten.Game
type App struct {
	ui *ebitenui.UI

	// State management
	state AppState

	config     *storage.Config
	fs         afero.Fs
	layout     *layout.Layout
	layoutPath string

	controller *nav.Controller
	media      *media.Manager
	cancel     context.CancelFunc
	titles     map[nav.MediaRef]string

	// Input
	input        *InputManager
	taps         *TapDetector
	guard        *GestureGuard
	releaseGuard func()

	// Main screen
	mainBg    *Background
	mainSpots *HotspotLayer

	// Secondary menu, drawn as hotspots over a background when the layout
	// has one, else as an ebitenui list
	secondaryBg     *Background
	secondarySpots  *HotspotLayer
	secondaryScreen *screens.SecondaryMenuScreen
	homeRect        image.Rectangle
	homeHover       bool

	errorScreen  screens.Screen
	overlay      *MediaOverlay
	notification *Notification

	designW, designH int
	lastScreen       nav.Screen
	exitRequested    bool
}

// NewApp creates and initializes the application
func NewApp(opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = storage.DefaultConfig()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Player == nil {
		return nil, errors.New("no media player")
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		state:        StateKiosk,
		config:       opts.Config,
		fs:           opts.Fs,
		layoutPath:   opts.LayoutPath,
		cancel:       cancel,
		input:        NewInputManager(),
		taps:         NewTapDetector(false),
		overlay:      NewMediaOverlay(),
		notification: NewNotification(),
		designW:      opts.Config.Display.DesignWidth,
		designH:      opts.Config.Display.DesignHeight,
	}
	app.media = media.NewManager(ctx, opts.Player)
	app.controller = nav.NewController(app.media)
	app.homeRect = overlayButtons(nav.AffordanceHome, app.designW, app.designH)[0].rect

	app.guard = NewGestureGuard(app.taps, opts.Config.Kiosk.SuppressGestures, opts.Config.Kiosk.HideCursor)
	app.releaseGuard = app.guard.Acquire()

	if opts.LayoutErr != nil || opts.Layout == nil {
		err := opts.LayoutErr
		if err == nil {
			err = errors.New("no layout")
		}
		app.showError(err)
		return app, nil
	}

	app.setLayout(opts.Layout)
	return app, nil
}

// setLayout builds the screens for l and resets navigation
func (a *App) setLayout(l *layout.Layout) {
	a.layout = l
	a.controller.GoHome()
	a.lastScreen = nav.ScreenMain

	disp := a.config.Display
	a.mainBg = a.loadBackground(l.Background)
	a.mainSpots = NewHotspotLayer(l.Hotspots, a.designW, a.designH, disp.ShowHotspots, disp.HotspotOpacity)

	a.titles = make(map[nav.MediaRef]string)
	for _, h := range l.Hotspots {
		if !h.IsNavigation() {
			a.titles[h.MediaRef()] = h.Label
		}
	}

	a.secondaryBg = nil
	a.secondarySpots = nil
	a.secondaryScreen = nil
	if l.Secondary != nil {
		for _, h := range l.Secondary.Actions {
			a.titles[h.MediaRef()] = h.Label
		}
		if l.Secondary.HasBackground() {
			a.secondaryBg = a.loadBackground(l.Secondary.Background)
			a.secondarySpots = NewHotspotLayer(l.Secondary.Actions, a.designW, a.designH, disp.ShowHotspots, disp.HotspotOpacity)
		} else {
			a.secondaryScreen = screens.NewSecondaryMenuScreen(l.Secondary)
			a.setRoot(a.secondaryScreen)
		}
	}

	logging.For("ui").Info().
		Int("hotspots", len(l.Hotspots)).
		Bool("secondary", l.Secondary != nil).
		Bool("secondaryList", a.secondaryScreen != nil).
		Msg("layout ready")
}

func (a *App) loadBackground(path string) *Background {
	bg, err := LoadBackground(a.fs, path)
	if err != nil {
		logging.For("ui").Warn().Err(err).Msg("background unavailable, using theme colour")
	}
	return bg
}

// showError switches to the layout error screen
func (a *App) showError(err error) {
	logging.For("ui").Error().Err(err).Str("layout", a.layoutPath).Msg("layout unusable")

	problems := layout.Problems(err)
	a.errorScreen = screens.NewErrorScreen(a, a.layoutPath, problems)
	a.state = StateError
	a.errorScreen.OnEnter()
	a.setRoot(a.errorScreen)
}

// setRoot makes s the ebitenui root
func (a *App) setRoot(s screens.Screen) {
	a.ui = &ebitenui.UI{Container: s.Build()}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if a.exitRequested {
		return ebiten.Termination
	}

	keys := a.input.Keys()
	if keys.Quit && a.config.Kiosk.AllowExit {
		a.Exit()
		return ebiten.Termination
	}

	if a.state == StateError {
		a.ui.Update()
		return nil
	}

	a.pollMedia()
	a.handleKeys(keys)

	sample := a.input.Sample()
	hover, hoverOK := a.input.Hover()
	a.setHover(hover, hoverOK)

	// Lay out the list before hit testing against its buttons
	if a.listVisible() {
		a.ui.Update()
	}

	if p, ok := a.taps.Feed(sample); ok {
		a.handleTap(p)
	}
	a.syncScreen()
	return nil
}

// pollMedia routes a finished playback through the controller
func (a *App) pollMedia() {
	ev, ok := a.media.Poll()
	if !ok {
		return
	}
	if ev.Err != nil {
		a.notification.ShowDefault("Could not play " + a.title(ev.Ref))
	}
	a.apply("media ended", a.controller.MediaEnded())
}

// handleKeys applies technician keyboard shortcuts
func (a *App) handleKeys(keys KeyActions) {
	st := a.controller.State()
	switch {
	case keys.Home:
		a.apply("home key", a.controller.GoHome())
	case keys.Dismiss && st.HasMedia():
		a.apply("dismiss", a.controller.MediaDismissed())
	case keys.Dismiss && st.Current == nav.ScreenSecondary:
		a.apply("escape", a.controller.GoHome())
	}
}

// handleTap maps a tap to a controller operation through the visible
// display mode
func (a *App) handleTap(p image.Point) {
	st := a.controller.State()

	switch {
	case st.HasMedia():
		a.overlay.Update(st.Affordance(), a.title(st.Media), a.designW, a.designH)
		action, ok := a.overlay.HitTest(p)
		if !ok {
			return
		}
		switch action {
		case nav.AffordanceBack:
			a.apply("back", a.controller.GoBack())
		case nav.AffordanceHome:
			a.apply("home", a.controller.GoHome())
		}

	case st.Current == nav.ScreenSecondary && a.secondaryScreen != nil:
		target, ok := a.secondaryScreen.HitTest(p)
		if !ok {
			return
		}
		if target.Home {
			a.apply("home", a.controller.GoHome())
			return
		}
		a.apply("secondary action "+target.Action.Label, a.controller.SelectSecondaryAction(target.Action.MediaRef()))

	case st.Current == nav.ScreenSecondary:
		if p.In(a.homeRect) {
			a.apply("home", a.controller.GoHome())
			return
		}
		if a.secondarySpots == nil {
			return
		}
		if h, ok := a.secondarySpots.HitTest(p); ok {
			a.apply("secondary action "+h.Label, a.controller.SelectSecondaryAction(h.MediaRef()))
		}

	default:
		if h, ok := a.mainSpots.HitTest(p); ok {
			a.apply("hotspot "+h.Label, a.controller.SelectHotspot(h))
		}
	}
}

func (a *App) setHover(p image.Point, ok bool) {
	st := a.controller.State()
	switch {
	case st.HasMedia():
		a.overlay.Update(st.Affordance(), a.title(st.Media), a.designW, a.designH)
		a.overlay.SetHover(p, ok)
	case st.Current == nav.ScreenSecondary:
		if a.secondarySpots != nil {
			a.secondarySpots.SetHover(p, ok)
		}
		a.homeHover = ok && p.In(a.homeRect)
	default:
		a.mainSpots.SetHover(p, ok)
	}
}

// syncScreen runs screen enter/exit hooks when the visible screen changes
func (a *App) syncScreen() {
	cur := a.controller.State().Current
	if cur == a.lastScreen {
		return
	}
	if a.secondaryScreen != nil {
		if cur == nav.ScreenSecondary {
			a.secondaryScreen.OnEnter()
		} else {
			a.secondaryScreen.OnExit()
		}
	}
	a.notification.Clear()
	a.lastScreen = cur
}

// apply logs the outcome of a controller operation
func (a *App) apply(op string, changed bool) {
	log := logging.For("nav")
	if !changed {
		log.Debug().Str("op", op).Msg("ignored")
		return
	}
	st := a.controller.State()
	log.Info().
		Str("op", op).
		Str("mode", st.Mode()).
		Stringer("previous", st.Previous).
		Stringer("affordance", st.Affordance()).
		Msg("transition")
}

func (a *App) title(ref nav.MediaRef) string {
	if t, ok := a.titles[ref]; ok {
		return t
	}
	return string(ref)
}

func (a *App) listVisible() bool {
	st := a.controller.State()
	return a.secondaryScreen != nil && !st.HasMedia() && st.Current == nav.ScreenSecondary
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	if a.state == StateError {
		a.ui.Draw(screen)
		return
	}

	st := a.controller.State()
	switch {
	case st.HasMedia():
		a.overlay.Update(st.Affordance(), a.title(st.Media), a.designW, a.designH)
		a.overlay.Draw(screen)
	case a.listVisible():
		a.ui.Draw(screen)
	case st.Current == nav.ScreenSecondary:
		a.secondaryBg.Draw(screen)
		if a.secondarySpots != nil {
			a.secondarySpots.Draw(screen)
		}
		drawReturnButton(screen, a.homeRect, nav.AffordanceHome.String(), a.homeHover)
	default:
		a.mainBg.Draw(screen)
		a.mainSpots.Draw(screen)
	}

	a.notification.Draw(screen)
}

// Layout implements ebiten.Game. The logical screen is the design surface;
// Ebitengine scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.designW, a.designH
}

// State returns the navigation state
func (a *App) State() nav.State {
	return a.controller.State()
}

// ScreenCallback implementations

// UseDefaultLayout leaves the error screen with the built-in layout
func (a *App) UseDefaultLayout() {
	logging.For("ui").Warn().Msg("continuing with built-in layout")
	if a.errorScreen != nil {
		a.errorScreen.OnExit()
		a.errorScreen = nil
	}
	a.setLayout(layout.Default())
	a.state = StateKiosk
	a.notification.ShowDefault("Using built-in layout")
}

// Exit asks the run loop to stop
func (a *App) Exit() {
	a.exitRequested = true
}

// Close stops playback and releases the gesture guard. Safe to call more
// than once.
func (a *App) Close() {
	a.releaseGuard()
	a.cancel()
	a.media.Close()
}
