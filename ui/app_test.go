package ui

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"

	"github.com/user-none/harbourkiosk/layout"
	"github.com/user-none/harbourkiosk/media/mocks"
	"github.com/user-none/harbourkiosk/nav"
	"github.com/user-none/harbourkiosk/ui/screens"
	"github.com/user-none/harbourkiosk/ui/storage"
)

// testLayout puts the secondary menu on a background so it is drawn as
// hotspots and needs no widget tree.
func testLayout() *layout.Layout {
	return &layout.Layout{
		Version: layout.CurrentVersion,
		Hotspots: []layout.Hotspot{
			{ID: 1, X: 50, Y: 50, Width: 200, Height: 100, Media: "psa.mp4", Label: "psa"},
			{ID: 2, X: 10, Y: 10, Width: 120, Height: 50, Media: "nav:secondary", Label: "know more"},
		},
		Secondary: &layout.Secondary{
			Title:      "Know More",
			Background: "more.png",
			Actions: []layout.Hotspot{
				{ID: 3, X: 60, Y: 20, Width: 300, Height: 100, Media: "terminal.mp4", Label: "Our Terminal"},
			},
		},
	}
}

func blockUntilCancelled(ctx context.Context, ref string) error {
	<-ctx.Done()
	return ctx.Err()
}

func newTestApp(t *testing.T, player *mocks.MockPlayer) *App {
	t.Helper()
	return newTestAppWith(t, player, Options{Layout: testLayout()})
}

func newTestAppWith(t *testing.T, player *mocks.MockPlayer, opts Options) *App {
	t.Helper()
	cfg := storage.DefaultConfig()
	cfg.Kiosk.HideCursor = false

	opts.Config = cfg
	opts.Fs = afero.NewMemMapFs()
	opts.Player = player
	app, err := NewApp(opts)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

func centre(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

func spotCentre(h layout.Hotspot) image.Point {
	return centre(h.Rect(1920, 1080))
}

func overlayCentre(aff, action nav.Affordance) image.Point {
	for _, b := range overlayButtons(aff, 1920, 1080) {
		if b.action == action {
			return centre(b.rect)
		}
	}
	return image.Point{-1, -1}
}

func waitForState(t *testing.T, a *App, want nav.State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		a.pollMedia()
		if a.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("state = %+v, want %+v", a.State(), want)
}

func TestAppPlainVideoScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "psa.mp4").Return(nil)

	a := newTestApp(t, player)
	l := testLayout()

	a.handleTap(spotCentre(l.Hotspots[0]))
	st := a.State()
	if st.Media != "psa.mp4" || st.Affordance() != nav.AffordanceHome {
		t.Fatalf("after psa tap state = %+v, affordance %v", st, st.Affordance())
	}
	if a.title(st.Media) != "psa" {
		t.Errorf("overlay title = %q, want psa", a.title(st.Media))
	}

	waitForState(t, a, nav.InitialState())
}

func TestAppSecondaryBackScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "terminal.mp4").DoAndReturn(blockUntilCancelled)

	a := newTestApp(t, player)
	l := testLayout()

	a.handleTap(spotCentre(l.Hotspots[1]))
	if got := a.State().Current; got != nav.ScreenSecondary {
		t.Fatalf("after know more, current = %v", got)
	}

	a.handleTap(spotCentre(l.Secondary.Actions[0]))
	st := a.State()
	if st.Media != "terminal.mp4" || st.Affordance() != nav.AffordanceBack {
		t.Fatalf("after Our Terminal, state = %+v", st)
	}

	a.handleTap(overlayCentre(nav.AffordanceBack, nav.AffordanceBack))
	want := nav.State{Current: nav.ScreenSecondary, Previous: nav.ScreenSecondary}
	if got := a.State(); got != want {
		t.Errorf("after Back, state = %+v, want %+v", got, want)
	}
}

func TestAppHomeFromSecondaryOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "terminal.mp4").DoAndReturn(blockUntilCancelled)

	a := newTestApp(t, player)
	l := testLayout()

	a.handleTap(spotCentre(l.Hotspots[1]))
	a.handleTap(spotCentre(l.Secondary.Actions[0]))
	a.handleTap(overlayCentre(nav.AffordanceBack, nav.AffordanceHome))

	if got := a.State(); got != nav.InitialState() {
		t.Errorf("after Home, state = %+v, want initial", got)
	}
}

func TestAppIgnoresHotspotsUnderOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "psa.mp4").DoAndReturn(blockUntilCancelled)

	a := newTestApp(t, player)
	l := testLayout()

	a.handleTap(spotCentre(l.Hotspots[0]))
	before := a.State()

	// The know more hotspot is hidden behind the overlay
	a.handleTap(spotCentre(l.Hotspots[1]))
	a.handleTap(spotCentre(l.Hotspots[0]))
	if got := a.State(); got != before {
		t.Errorf("tap under overlay changed state to %+v", got)
	}
}

func TestAppSecondaryHomeButton(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestApp(t, mocks.NewMockPlayer(ctrl))

	a.handleTap(spotCentre(testLayout().Hotspots[1]))
	a.handleTap(centre(a.homeRect))
	if got := a.State(); got != nav.InitialState() {
		t.Errorf("after secondary Home, state = %+v", got)
	}
}

func TestAppKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "terminal.mp4").DoAndReturn(blockUntilCancelled)

	a := newTestApp(t, player)
	l := testLayout()

	a.handleTap(spotCentre(l.Hotspots[1]))
	a.handleTap(spotCentre(l.Secondary.Actions[0]))

	// ESC dismisses the overlay and routes like an end
	a.handleKeys(KeyActions{Dismiss: true})
	if got := a.State(); got.Current != nav.ScreenSecondary || got.HasMedia() {
		t.Fatalf("after dismiss, state = %+v", got)
	}

	// ESC again leaves the secondary menu
	a.handleKeys(KeyActions{Dismiss: true})
	if got := a.State(); got != nav.InitialState() {
		t.Errorf("after second ESC, state = %+v", got)
	}
}

func TestAppPlayerFailureReturns(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "psa.mp4").Return(context.DeadlineExceeded)

	a := newTestApp(t, player)
	a.handleTap(spotCentre(testLayout().Hotspots[0]))

	waitForState(t, a, nav.InitialState())
	if !a.notification.IsVisible() {
		t.Error("expected a notification for the failed playback")
	}
}

func TestAppExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestApp(t, mocks.NewMockPlayer(ctrl))

	a.Exit()
	if !a.exitRequested {
		t.Error("Exit did not request termination")
	}
	a.Close()
	if a.guard.Held() {
		t.Error("gesture guard still held after Close")
	}
}

func TestNewAppNeedsPlayer(t *testing.T) {
	if _, err := NewApp(Options{Layout: testLayout()}); err == nil {
		t.Error("expected error without a player")
	}
}

// layoutList runs the ebitenui update and draw passes so the list buttons
// get their on-screen rects.
func layoutList(a *App) {
	screen := ebiten.NewImage(a.designW, a.designH)
	a.ui.Update()
	a.ui.Draw(screen)
	a.ui.Update()
}

// findListButton scans the design surface for a point on the list button
// matching want.
func findListButton(t *testing.T, a *App, want func(screens.MenuTarget) bool) image.Point {
	t.Helper()
	for y := 0; y < a.designH; y += 4 {
		for x := 0; x < a.designW; x += 4 {
			p := image.Pt(x, y)
			if target, ok := a.secondaryScreen.HitTest(p); ok && want(target) {
				return p
			}
		}
	}
	t.Fatal("list button not found on screen")
	return image.Point{}
}

func firstNavigation(t *testing.T, l *layout.Layout) layout.Hotspot {
	t.Helper()
	for _, h := range l.Hotspots {
		if h.IsNavigation() {
			return h
		}
	}
	t.Fatal("layout has no navigation hotspot")
	return layout.Hotspot{}
}

func TestAppSecondaryListScenario(t *testing.T) {
	l := layout.Default()
	if l.Secondary.HasBackground() {
		t.Fatal("built-in secondary menu should be a list")
	}
	terminal := l.Secondary.Actions[0]
	if terminal.Label != "Our Terminal" {
		t.Fatalf("first action = %q, want Our Terminal", terminal.Label)
	}

	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), terminal.Media).DoAndReturn(blockUntilCancelled)

	a := newTestAppWith(t, player, Options{Layout: l})
	if a.secondaryScreen == nil {
		t.Fatal("expected the list screen for a secondary menu without background")
	}

	a.handleTap(spotCentre(firstNavigation(t, l)))
	if !a.listVisible() {
		t.Fatalf("list not visible, state = %+v", a.State())
	}

	layoutList(a)
	p := findListButton(t, a, func(m screens.MenuTarget) bool { return m.Action.ID == terminal.ID })
	a.handleTap(p)

	st := a.State()
	if st.Media != terminal.MediaRef() || st.Affordance() != nav.AffordanceBack {
		t.Fatalf("after Our Terminal, state = %+v, affordance %v", st, st.Affordance())
	}
	if a.listVisible() {
		t.Error("list still visible under the overlay")
	}

	a.handleTap(overlayCentre(nav.AffordanceBack, nav.AffordanceBack))
	want := nav.State{Current: nav.ScreenSecondary, Previous: nav.ScreenSecondary}
	if got := a.State(); got != want {
		t.Fatalf("after Back, state = %+v, want %+v", got, want)
	}

	home := findListButton(t, a, func(m screens.MenuTarget) bool { return m.Home })
	a.handleTap(home)
	if got := a.State(); got != nav.InitialState() {
		t.Errorf("after list Home, state = %+v", got)
	}
}

func TestAppLayoutErrorScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), gomock.Any()).DoAndReturn(blockUntilCancelled)

	layoutErr := errors.Join(
		&layout.ValidationError{Field: "hotspots.x", ID: 4, Err: layout.ErrOutOfRange},
		&layout.ValidationError{Field: "hotspots", Err: layout.ErrNoHotspots},
	)
	a := newTestAppWith(t, player, Options{LayoutPath: "broken.json", LayoutErr: layoutErr})

	if a.state != StateError {
		t.Fatalf("state = %v, want StateError", a.state)
	}
	if a.errorScreen == nil || a.ui == nil {
		t.Fatal("error screen not shown")
	}

	a.UseDefaultLayout()
	if a.state != StateKiosk {
		t.Fatalf("after UseDefaultLayout state = %v, want StateKiosk", a.state)
	}
	if a.errorScreen != nil {
		t.Error("error screen kept after leaving it")
	}
	if got := len(a.mainSpots.views); got != 11 {
		t.Errorf("main hotspots = %d, want 11", got)
	}
	if got := a.State(); got != nav.InitialState() {
		t.Errorf("navigation state = %+v, want initial", got)
	}
	if !a.notification.IsVisible() {
		t.Error("expected a notification about the built-in layout")
	}

	// The kiosk is live again
	var video layout.Hotspot
	for _, h := range a.layout.Hotspots {
		if !h.IsNavigation() {
			video = h
			break
		}
	}
	a.handleTap(spotCentre(video))
	if got := a.State().Media; got != video.MediaRef() {
		t.Errorf("after tap, media = %q, want %q", got, video.MediaRef())
	}
}

func TestAppMissingLayoutShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestAppWith(t, mocks.NewMockPlayer(ctrl), Options{})
	if a.state != StateError {
		t.Errorf("state = %v, want StateError", a.state)
	}
}
