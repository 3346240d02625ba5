// Package types provides shared interfaces used across UI packages.
// This package exists to avoid import cycles between screens and the app.
package types

// ScreenCallback lets screens ask the app to leave them
type ScreenCallback interface {
	Exit()
	// UseDefaultLayout continues with the built-in layout after a layout
	// file failed to load.
	UseDefaultLayout()
}
