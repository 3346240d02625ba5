package ui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/harbourkiosk/logging"
)

// GestureGuard locks input down to single taps for as long as it is held.
// It hides the cursor when configured to.
type GestureGuard struct {
	taps       *TapDetector
	suppress   bool
	hideCursor bool

	mu   sync.Mutex
	held bool

	// setCursorHidden is swapped out in tests
	setCursorHidden func(hidden bool)
}

// NewGestureGuard creates a guard that controls taps
func NewGestureGuard(taps *TapDetector, suppress, hideCursor bool) *GestureGuard {
	return &GestureGuard{
		taps:            taps,
		suppress:        suppress,
		hideCursor:      hideCursor,
		setCursorHidden: setEbitenCursorHidden,
	}
}

func setEbitenCursorHidden(hidden bool) {
	if hidden {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Acquire installs the guard and returns the func that removes it. The
// release func may be called more than once. Acquiring a held guard returns
// a no-op release.
func (g *GestureGuard) Acquire() (release func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.held {
		return func() {}
	}
	g.held = true
	g.taps.Suppress = g.suppress
	if g.hideCursor {
		g.setCursorHidden(true)
	}
	logging.For("ui").Debug().Bool("suppress", g.suppress).Bool("hideCursor", g.hideCursor).Msg("gesture guard acquired")

	var once sync.Once
	return func() {
		once.Do(g.release)
	}
}

func (g *GestureGuard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.held = false
	g.taps.Suppress = false
	g.taps.Reset()
	if g.hideCursor {
		g.setCursorHidden(false)
	}
	logging.For("ui").Debug().Msg("gesture guard released")
}

// Held reports whether the guard is installed
func (g *GestureGuard) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}
