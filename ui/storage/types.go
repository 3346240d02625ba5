package storage

import "fmt"

// Config represents the kiosk configuration stored in config.json
type Config struct {
	Version    int           `json:"version"`
	LayoutPath string        `json:"layout" env:"KIOSK_LAYOUT"` // Empty = built-in layout
	Window     WindowConfig  `json:"window"`
	Display    DisplayConfig `json:"display"`
	Player     PlayerConfig  `json:"player"`
	Kiosk      KioskConfig   `json:"kiosk"`
	Log        LogConfig     `json:"log"`
}

// WindowConfig contains window size and mode
type WindowConfig struct {
	Width      int  `json:"width" env:"KIOSK_WINDOW_WIDTH"`
	Height     int  `json:"height" env:"KIOSK_WINDOW_HEIGHT"`
	Fullscreen bool `json:"fullscreen" env:"KIOSK_FULLSCREEN"`
}

// DisplayConfig contains the design surface hotspots are positioned on
type DisplayConfig struct {
	DesignWidth    int     `json:"designWidth" env:"KIOSK_DESIGN_WIDTH"`
	DesignHeight   int     `json:"designHeight" env:"KIOSK_DESIGN_HEIGHT"`
	ShowHotspots   bool    `json:"showHotspots" env:"KIOSK_SHOW_HOTSPOTS"`     // false = invisible hotspots
	HotspotOpacity float64 `json:"hotspotOpacity" env:"KIOSK_HOTSPOT_OPACITY"` // 0..1 fill alpha
}

// PlayerConfig selects and configures the media player
type PlayerConfig struct {
	Kind         string   `json:"kind" env:"KIOSK_PLAYER"` // "exec" or "timer"
	Command      string   `json:"command" env:"KIOSK_PLAYER_COMMAND"`
	Args         []string `json:"args" env:"KIOSK_PLAYER_ARGS" envSeparator:" "`
	TimerSeconds int      `json:"timerSeconds" env:"KIOSK_PLAYER_TIMER_SECONDS"`
}

// KioskConfig contains lockdown behaviour
type KioskConfig struct {
	HideCursor        bool `json:"hideCursor" env:"KIOSK_HIDE_CURSOR"`
	SuppressGestures  bool `json:"suppressGestures" env:"KIOSK_SUPPRESS_GESTURES"`
	AllowExit         bool `json:"allowExit" env:"KIOSK_ALLOW_EXIT"` // Ctrl+Q quits
	VerifyRemoteMedia bool `json:"verifyRemoteMedia" env:"KIOSK_VERIFY_REMOTE_MEDIA"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `json:"level" env:"KIOSK_LOG_LEVEL"`
	Format string `json:"format" env:"KIOSK_LOG_FORMAT"` // "console" or "json"
}

// Player kinds
const (
	PlayerExec  = "exec"
	PlayerTimer = "timer"
)

// DefaultPlayerCommand is the external player used when none is configured
const DefaultPlayerCommand = "mpv"

// VideoHeightPercent is the share of the screen height the default player
// window covers. The strip below it stays clear for the Home and Back
// buttons drawn by the kiosk.
const VideoHeightPercent = 88

// DefaultPlayerArgs returns the mpv arguments for a borderless, always on
// top window pinned to the top of the screen.
func DefaultPlayerArgs() []string {
	return []string{
		"--no-terminal",
		"--no-osc",
		"--no-border",
		"--ontop",
		"--keepaspect-window=no",
		fmt.Sprintf("--geometry=100%%x%d%%+0+0", VideoHeightPercent),
	}
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		LayoutPath: "",
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: true,
		},
		Display: DisplayConfig{
			DesignWidth:    1920,
			DesignHeight:   1080,
			ShowHotspots:   true,
			HotspotOpacity: 0.3,
		},
		Player: PlayerConfig{
			Kind:         PlayerExec,
			Command:      DefaultPlayerCommand,
			Args:         DefaultPlayerArgs(),
			TimerSeconds: 10,
		},
		Kiosk: KioskConfig{
			HideCursor:       true,
			SuppressGestures: true,
			AllowExit:        false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
