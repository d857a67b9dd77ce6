package thumbnail

import (
	"image"
	"image/draw"
)

// ToRGBA converts a thumbnail to the premultiplied RGBA layout GPU textures
// are created from. Images that already are RGBA are returned as-is.
func ToRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
