// Package style holds the kiosk colours, fonts and shared widget builders.
package style

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors
var (
	Background    = color.NRGBA{0x0b, 0x25, 0x3a, 0xff} // Harbour navy
	Surface       = color.NRGBA{0x14, 0x3d, 0x5c, 0xff}
	Primary       = color.NRGBA{0x1f, 0x6f, 0x9f, 0xff} // Sea blue
	PrimaryHover  = color.NRGBA{0x2b, 0x86, 0xbd, 0xff}
	Text          = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary = color.NRGBA{0xb8, 0xc7, 0xd3, 0xff}
	Accent        = color.NRGBA{0xff, 0xc1, 0x07, 0xff} // Hover outline
	Border        = color.NRGBA{0x2a, 0x4d, 0x69, 0xff}
	Black         = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	Error         = color.NRGBA{0xe5, 0x53, 0x4b, 0xff}
)

// Font sizes in design pixels
const (
	LabelSize  = 22
	ButtonSize = 30
	TitleSize  = 48
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	smallFace     text.Face
)

func mustSource(ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(fmt.Sprintf("failed to load font: %v", err))
	}
	return src
}

// FontFace returns the regular UI face at the given size
func FontFace(size float64) text.Face {
	if regularSource == nil {
		regularSource = mustSource(goregular.TTF)
	}
	return &text.GoTextFace{Source: regularSource, Size: size}
}

// BoldFace returns the bold face used for titles
func BoldFace(size float64) text.Face {
	if boldSource == nil {
		boldSource = mustSource(gobold.TTF)
	}
	return &text.GoTextFace{Source: boldSource, Size: size}
}

// SmallFace returns the bitmap face used for diagnostics and toasts
func SmallFace() text.Face {
	if smallFace == nil {
		smallFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return smallFace
}

// FacePtr returns f in the pointer form ebitenui widgets take
func FacePtr(f text.Face) *text.Face {
	return &f
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a prominent button image set
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}

// TextButton creates a standard text button with consistent styling.
// A nil handler leaves click handling to the caller.
func TextButton(label string, padding int, handler func(*widget.ButtonClickedEventArgs), opts ...widget.ButtonOpt) *widget.Button {
	return newTextButton(ButtonImage(), label, padding, handler, opts)
}

// PrimaryTextButton creates a prominent text button with primary styling.
func PrimaryTextButton(label string, padding int, handler func(*widget.ButtonClickedEventArgs), opts ...widget.ButtonOpt) *widget.Button {
	return newTextButton(PrimaryButtonImage(), label, padding, handler, opts)
}

func newTextButton(img *widget.ButtonImage, label string, padding int, handler func(*widget.ButtonClickedEventArgs), extra []widget.ButtonOpt) *widget.Button {
	opts := []widget.ButtonOpt{
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, FacePtr(FontFace(ButtonSize)), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(padding)),
	}
	if handler != nil {
		opts = append(opts, widget.ButtonOpts.ClickedHandler(handler))
	}
	opts = append(opts, extra...)
	return widget.NewButton(opts...)
}
