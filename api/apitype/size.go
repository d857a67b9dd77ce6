package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) LongestSide() int {
	if s.width > s.height {
		return s.width
	}
	return s.height
}

func (s Size) IsEmpty() bool {
	return s.width <= 0 || s.height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}

// FitWithin is ScaleToFit that never upscales. The source is returned as-is
// when it already fits the bounding box.
func FitWithin(source Size, bounds Size) Size {
	if source.IsEmpty() || bounds.IsEmpty() {
		return Size{}
	}
	if source.width <= bounds.width && source.height <= bounds.height {
		return source
	}
	width, height := ScaleToFit(source.width, source.height, bounds.width, bounds.height)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Size{width, height}
}
