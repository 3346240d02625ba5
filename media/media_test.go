package media

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/user-none/harbourkiosk/media/mocks"
	"github.com/user-none/harbourkiosk/nav"
)

// waitPoll polls until an event arrives or the deadline passes
func waitPoll(t *testing.T, m *Manager) (Event, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := m.Poll(); ok {
			return ev, true
		}
		time.Sleep(time.Millisecond)
	}
	return Event{}, false
}

// waitQueued waits until n ends sit in the channel unpolled
func waitQueued(t *testing.T, m *Manager, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for len(m.events) < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d queued ends", n)
		}
		time.Sleep(time.Millisecond)
	}
}

func blockUntilCancelled(ctx context.Context, ref string) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestManagerDeliversOneEndPerPlayback(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "psa.mp4").Return(nil)

	m := NewManager(context.Background(), player)
	defer m.Close()

	m.MediaStarted("psa.mp4")
	if !m.Active() {
		t.Fatal("expected active playback")
	}

	ev, ok := waitPoll(t, m)
	if !ok {
		t.Fatal("no end delivered")
	}
	if ev.Ref != "psa.mp4" || ev.Err != nil {
		t.Errorf("Poll() = %+v, want psa.mp4 without error", ev)
	}
	if m.Active() {
		t.Error("expected playback inactive after end")
	}
	if _, ok := m.Poll(); ok {
		t.Error("second end delivered for the same playback")
	}
}

func TestManagerDropsEndAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "harbour.mp4").Return(nil)

	m := NewManager(context.Background(), player)
	defer m.Close()

	m.MediaStarted("harbour.mp4")
	waitQueued(t, m, 1)

	// Home pressed before the UI drained the end
	m.MediaStopped("harbour.mp4", nav.StopHome)
	if ev, ok := m.Poll(); ok {
		t.Errorf("stale end delivered after Home: %+v", ev)
	}
}

func TestManagerDropsEndFromEarlierGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	gomock.InOrder(
		player.EXPECT().Play(gomock.Any(), "first.mp4").Return(nil),
		player.EXPECT().Play(gomock.Any(), "second.mp4").DoAndReturn(blockUntilCancelled),
	)

	m := NewManager(context.Background(), player)
	defer m.Close()

	m.MediaStarted("first.mp4")
	waitQueued(t, m, 1)
	m.MediaStarted("second.mp4")

	if ev, ok := m.Poll(); ok {
		t.Errorf("end of first playback routed to second: %+v", ev)
	}
	if !m.Active() {
		t.Error("second playback should still be active")
	}
}

func TestManagerStopCancelsPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)

	cancelled := make(chan struct{})
	player.EXPECT().Play(gomock.Any(), "terminal.mp4").DoAndReturn(func(ctx context.Context, ref string) error {
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	})

	m := NewManager(context.Background(), player)
	m.MediaStarted("terminal.mp4")
	m.MediaStopped("terminal.mp4", nav.StopBack)

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("player was not cancelled")
	}
	m.Close()

	if _, ok := m.Poll(); ok {
		t.Error("cancelled playback produced an end")
	}
}

func TestManagerPlayerErrorCountsAsEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	boom := errors.New("no such file")
	player.EXPECT().Play(gomock.Any(), "missing.mp4").Return(boom)

	m := NewManager(context.Background(), player)
	defer m.Close()

	m.MediaStarted("missing.mp4")
	ev, ok := waitPoll(t, m)
	if !ok {
		t.Fatal("failed playback produced no end")
	}
	if !errors.Is(ev.Err, boom) {
		t.Errorf("Event.Err = %v, want %v", ev.Err, boom)
	}
}

func TestManagerDrivenByController(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(gomock.Any(), "our-terminal.mp4").Return(nil)

	m := NewManager(context.Background(), player)
	defer m.Close()
	c := nav.NewController(m)

	c.SelectHotspot(hotspotRef(nav.NavigateSecondary))
	c.SelectSecondaryAction("our-terminal.mp4")

	if _, ok := waitPoll(t, m); !ok {
		t.Fatal("no end delivered")
	}
	c.MediaEnded()

	want := nav.State{Current: nav.ScreenSecondary, Previous: nav.ScreenSecondary}
	if got := c.State(); got != want {
		t.Errorf("state = %+v, want %+v", got, want)
	}
}

type hotspotRef nav.MediaRef

func (r hotspotRef) MediaRef() nav.MediaRef { return nav.MediaRef(r) }

func TestTimerPlayer(t *testing.T) {
	p := &TimerPlayer{Duration: 5 * time.Millisecond}
	if err := p.Play(context.Background(), "a.mp4"); err != nil {
		t.Errorf("Play() = %v, want nil", err)
	}

	p = &TimerPlayer{Duration: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Play(ctx, "a.mp4"); !errors.Is(err, context.Canceled) {
		t.Errorf("Play() after cancel = %v, want context.Canceled", err)
	}
}

func TestExecPlayer(t *testing.T) {
	if err := (&ExecPlayer{}).Play(context.Background(), "a.mp4"); err == nil {
		t.Error("expected error with no command")
	}

	p := NewExecPlayer("harbourkiosk-no-such-player")
	if err := p.Play(context.Background(), "a.mp4"); err == nil {
		t.Error("expected error for missing binary")
	}

	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}
	p = NewExecPlayer(sleep)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	if err := p.Play(ctx, "30"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Play() = %v, want context.DeadlineExceeded", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("cancelled player was not torn down")
	}
}
