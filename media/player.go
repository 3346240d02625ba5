// Package media plays the clip behind a hotspot and reports when it ends.
package media

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

// Player plays a single media reference. Play blocks until playback ends
// naturally (nil) or fails. Cancelling ctx tears playback down immediately.
type Player interface {
	Play(ctx context.Context, ref string) error
}

// ExecPlayer runs an external player process per clip, e.g. mpv.
type ExecPlayer struct {
	Command string
	Args    []string
	// WaitDelay bounds how long a cancelled player may take to exit.
	WaitDelay time.Duration
}

// NewExecPlayer creates a player that runs "command args... ref"
func NewExecPlayer(command string, args ...string) *ExecPlayer {
	return &ExecPlayer{
		Command:   command,
		Args:      args,
		WaitDelay: 2 * time.Second,
	}
}

// Play runs the player and waits for it to exit
func (p *ExecPlayer) Play(ctx context.Context, ref string) error {
	if p.Command == "" {
		return errors.New("no player command configured")
	}

	args := make([]string, 0, len(p.Args)+1)
	args = append(args, p.Args...)
	args = append(args, ref)

	cmd := exec.CommandContext(ctx, p.Command, args...)
	cmd.WaitDelay = p.WaitDelay
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s %s: %w", p.Command, ref, err)
	}
	return nil
}

// TimerPlayer pretends to play each clip for a fixed duration.
type TimerPlayer struct {
	Duration time.Duration
}

// Play waits for the configured duration or until ctx is done
func (p *TimerPlayer) Play(ctx context.Context, ref string) error {
	t := time.NewTimer(p.Duration)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
