package media

import (
	"context"
	"sync"

	"github.com/user-none/harbourkiosk/logging"
	"github.com/user-none/harbourkiosk/nav"
)

// Event reports that a playback finished on its own. Err is set when the
// player failed; the kiosk still treats it as the end of the clip.
type Event struct {
	Ref nav.MediaRef
	Err error
}

type ended struct {
	gen uint64
	ref nav.MediaRef
	err error
}

// Manager drives a Player from navigation transitions. It implements
// nav.Hooks. MediaStarted, MediaStopped and Poll must all be called from the
// same goroutine; only the playback goroutines run elsewhere.
type Manager struct {
	ctx    context.Context
	player Player

	gen    uint64
	active bool
	cancel context.CancelFunc

	events chan ended
	wg     sync.WaitGroup
}

// NewManager creates a manager. Cancelling ctx stops any playback.
func NewManager(ctx context.Context, player Player) *Manager {
	return &Manager{
		ctx:    ctx,
		player: player,
		events: make(chan ended, 4),
	}
}

// MediaStarted starts playback of ref in a new generation
func (m *Manager) MediaStarted(ref nav.MediaRef) {
	m.stop()

	m.gen++
	m.active = true
	gen := m.gen

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	logging.For("media").Info().Str("ref", string(ref)).Uint64("gen", gen).Msg("playback started")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		err := m.player.Play(ctx, string(ref))
		if ctx.Err() != nil {
			// Torn down by Home/Back/dismiss; nothing to report
			return
		}
		select {
		case m.events <- ended{gen: gen, ref: ref, err: err}:
		case <-ctx.Done():
		}
	}()
}

// MediaStopped tears down the active playback
func (m *Manager) MediaStopped(ref nav.MediaRef, reason nav.StopReason) {
	logging.For("media").Info().Str("ref", string(ref)).Stringer("reason", reason).Msg("playback stopped")
	m.stop()
}

func (m *Manager) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.active = false
}

// Active reports whether a playback is running
func (m *Manager) Active() bool {
	return m.active
}

// Poll returns the end of the current playback, if it has arrived. Ends from
// earlier generations are discarded. It never blocks.
func (m *Manager) Poll() (Event, bool) {
	for {
		select {
		case ev := <-m.events:
			if !m.active || ev.gen != m.gen {
				logging.For("media").Debug().Str("ref", string(ev.ref)).Uint64("gen", ev.gen).Msg("dropping stale end")
				continue
			}
			m.active = false
			m.cancel()
			m.cancel = nil
			if ev.err != nil {
				logging.For("media").Error().Err(ev.err).Str("ref", string(ev.ref)).Msg("playback failed")
			}
			return Event{Ref: ev.ref, Err: ev.err}, true
		default:
			return Event{}, false
		}
	}
}

// Close stops any playback and waits for player goroutines to exit
func (m *Manager) Close() {
	m.stop()
	m.wg.Wait()
}
