// Package screens builds the ebitenui screens of the kiosk.
package screens

import (
	"github.com/ebitenui/ebitenui/widget"

	"github.com/user-none/harbourkiosk/ui/types"
)

// ScreenCallback is re-exported so screens don't need the types import
type ScreenCallback = types.ScreenCallback

// Screen is a widget tree the app swaps in as the ebitenui root
type Screen interface {
	Build() *widget.Container
	OnEnter()
	OnExit()
}
