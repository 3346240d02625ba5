package style

import (
	goimage "image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// CoverScale returns the scale and offset that make a srcW x srcH image
// cover a dstW x dstH area, cropping the overflow evenly on both sides.
func CoverScale(srcW, srcH, dstW, dstH int) (scale, offX, offY float64) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 0, 0
	}
	scaleX := float64(dstW) / float64(srcW)
	scaleY := float64(dstH) / float64(srcH)
	scale = scaleX
	if scaleY > scaleX {
		scale = scaleY
	}
	offX = (float64(dstW) - float64(srcW)*scale) / 2
	offY = (float64(dstH) - float64(srcH)*scale) / 2
	return scale, offX, offY
}

// DrawCover draws src over the whole of dst using CoverScale
func DrawCover(dst, src *ebiten.Image) {
	sb := src.Bounds()
	db := dst.Bounds()
	scale, offX, offY := CoverScale(sb.Dx(), sb.Dy(), db.Dx(), db.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offX, offY)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

var pixel *ebiten.Image

// FillRect fills r on dst with c, alpha included
func FillRect(dst *ebiten.Image, r goimage.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

// WithAlpha returns c with its alpha replaced by a (0..1)
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// TruncateEnd truncates a string from the end, keeping the start portion.
// Returns the truncated string and whether truncation occurred.
func TruncateEnd(s string, maxLen int) (string, bool) {
	r := []rune(s)
	if len(r) <= maxLen {
		return s, false
	}
	if maxLen <= 3 {
		return string(r[:maxLen]), true
	}
	return string(r[:maxLen-3]) + "...", true
}
