package style

import "time"

// Layout constants in design pixels
const (
	DefaultPadding = 16
	DefaultSpacing = 16
	SmallSpacing   = 8
	LargeSpacing   = 24

	ButtonPaddingMedium = 12
	ButtonPaddingLarge  = 24

	// Secondary menu list buttons
	MenuButtonWidth = 640

	// Overlay return buttons, bottom-left corner
	OverlayButtonWidth  = 200
	OverlayButtonHeight = 80
	OverlayMargin       = 24

	// Max characters on a hotspot label before truncation
	LabelMaxChars = 28
)

// Notification timing
const (
	NotificationDuration = 3 * time.Second
)
