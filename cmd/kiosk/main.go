package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"

	"github.com/user-none/harbourkiosk/layout"
	"github.com/user-none/harbourkiosk/logging"
	"github.com/user-none/harbourkiosk/media"
	"github.com/user-none/harbourkiosk/ui"
	"github.com/user-none/harbourkiosk/ui/storage"
)

const verifyTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config.json (default: per-user config dir)")
	layoutPath := flag.String("layout", "", "path to layout JSON (overrides config)")
	check := flag.Bool("check", false, "validate the layout and its media, then exit")
	writeConfig := flag.Bool("write-config", false, "write a default config.json if missing, then exit")
	dumpLayout := flag.String("dump-layout", "", "write the built-in layout to this path, then exit")
	windowed := flag.Bool("windowed", false, "run in a window instead of fullscreen")
	playerKind := flag.String("player", "", "media player: exec or timer (overrides config)")
	flag.Parse()

	fs := afero.NewOsFs()

	if *configPath == "" {
		p, err := storage.DefaultConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		*configPath = p
	}

	if *writeConfig {
		created, err := storage.CreateConfigIfMissing(fs, *configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			return 1
		}
		if created {
			fmt.Printf("Wrote %s\n", *configPath)
		} else {
			fmt.Printf("%s already exists\n", *configPath)
		}
		return 0
	}

	if *dumpLayout != "" {
		if err := layout.Save(fs, *dumpLayout, layout.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write layout: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", *dumpLayout)
		return 0
	}

	cfg, err := storage.LoadConfig(fs, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := storage.ApplyEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply environment: %v\n", err)
		return 1
	}
	if *layoutPath != "" {
		cfg.LayoutPath = *layoutPath
	}
	if *windowed {
		cfg.Window.Fullscreen = false
	}
	if *playerKind != "" {
		cfg.Player.Kind = *playerKind
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	log := logging.For("main")
	log.Info().Str("config", *configPath).Str("layout", layoutName(cfg.LayoutPath)).Msg("starting")

	l, layoutErr := loadLayout(fs, cfg.LayoutPath)
	var mediaErr error
	if layoutErr == nil {
		ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
		mediaErr = l.VerifyMedia(ctx, fs, layout.VerifyOptions{Remote: cfg.Kiosk.VerifyRemoteMedia})
		cancel()
	}

	if *check {
		return report(cfg.LayoutPath, layoutErr, mediaErr)
	}

	if mediaErr != nil {
		for _, p := range layout.Problems(mediaErr) {
			log.Warn().Str("problem", p).Msg("media check failed")
		}
	}

	player, err := newPlayer(cfg.Player)
	if err != nil {
		log.Error().Err(err).Msg("invalid player config")
		return 1
	}

	app, err := ui.NewApp(ui.Options{
		Config:     cfg,
		Fs:         fs,
		Player:     player,
		Layout:     l,
		LayoutPath: layoutName(cfg.LayoutPath),
		LayoutErr:  layoutErr,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to start")
		return 1
	}
	defer app.Close()

	ebiten.SetWindowTitle(ui.Name)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	// The player window takes focus during playback; the return buttons
	// below it must keep updating.
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Error().Err(err).Msg("run loop failed")
		return 1
	}
	log.Info().Msg("exiting")
	return 0
}

// loadLayout loads and validates the layout. An empty path selects the
// built-in layout.
func loadLayout(fs afero.Fs, path string) (*layout.Layout, error) {
	var l *layout.Layout
	if path == "" {
		l = layout.Default()
	} else {
		var err error
		if l, err = layout.Load(fs, path); err != nil {
			return nil, err
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// report prints the -check result and returns the exit code
func report(path string, layoutErr, mediaErr error) int {
	name := layoutName(path)
	if layoutErr == nil && mediaErr == nil {
		fmt.Printf("%s: OK\n", name)
		return 0
	}
	for _, err := range []error{layoutErr, mediaErr} {
		for _, p := range layout.Problems(err) {
			fmt.Printf("%s: %s\n", name, p)
		}
	}
	return 1
}

func layoutName(path string) string {
	if path == "" {
		return "built-in layout"
	}
	return path
}

// newPlayer builds the configured media player
func newPlayer(cfg storage.PlayerConfig) (media.Player, error) {
	switch cfg.Kind {
	case storage.PlayerExec:
		return media.NewExecPlayer(cfg.Command, cfg.Args...), nil
	case storage.PlayerTimer:
		return &media.TimerPlayer{Duration: time.Duration(cfg.TimerSeconds) * time.Second}, nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", cfg.Kind)
	}
}
