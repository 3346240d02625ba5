package ui

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	_ "golang.org/x/image/webp"

	"github.com/user-none/harbourkiosk/ui/style"
)

// decodeImage reads a PNG, JPEG or WebP image from fs
func decodeImage(fs afero.Fs, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Background is a screen backdrop drawn cover-scaled. Without an image it
// draws the embedded fallback.
type Background struct {
	img *ebiten.Image
}

// LoadBackground loads path from fs. An empty path gives a plain backdrop.
func LoadBackground(fs afero.Fs, path string) (*Background, error) {
	if path == "" {
		return &Background{}, nil
	}
	img, err := decodeImage(fs, path)
	if err != nil {
		return &Background{}, err
	}
	return &Background{img: ebiten.NewImageFromImage(img)}, nil
}

// Draw fills screen with the backdrop
func (b *Background) Draw(screen *ebiten.Image) {
	screen.Fill(style.Background)
	img := FallbackBackground()
	if b != nil && b.img != nil {
		img = b.img
	}
	if img == nil {
		return
	}
	style.DrawCover(screen, img)
}
