package ui

import (
	"bytes"
	_ "embed"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/harbourkiosk/logging"
)

//go:embed assets/fallback_bg.png
var fallbackImageData []byte

var fallbackImage *ebiten.Image

func decodeFallback() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(fallbackImageData))
	return img, err
}

// FallbackBackground returns the backdrop used when a layout background is
// missing or unreadable
func FallbackBackground() *ebiten.Image {
	if fallbackImage != nil {
		return fallbackImage
	}

	img, err := decodeFallback()
	if err != nil {
		logging.For("ui").Error().Err(err).Msg("failed to decode fallback background")
		return nil
	}

	fallbackImage = ebiten.NewImageFromImage(img)
	return fallbackImage
}
