package apitype

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

type ExifOrientation struct {
	orientation uint8
	rotation    int
	flipped     bool
}

const exifUnchangedOrientation = 1

var NoExifOrientation = ExifOrientation{orientation: exifUnchangedOrientation}

func (s ExifOrientation) Orientation() uint8 {
	return s.orientation
}

// Rotation is the counter clockwise angle applied before the flip.
func (s ExifOrientation) Rotation() int {
	return s.rotation
}

func (s ExifOrientation) IsFlipped() bool {
	return s.flipped
}

func (s ExifOrientation) IsUnchanged() bool {
	return s.rotation == noRotate && !s.flipped
}

func ReadExifOrientation(reader io.Reader) (ExifOrientation, error) {
	decodedExif, err := exif.Decode(reader)
	if err != nil {
		return NoExifOrientation, err
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return NoExifOrientation, err
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return NoExifOrientation, err
	}
	angle, flip := ExifOrientationToAngleAndFlip(orientation)
	return ExifOrientation{
		orientation: uint8(orientation),
		rotation:    angle,
		flipped:     flip,
	}, nil
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func ExifOrientationToAngleAndFlip(orientation int) (int, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, orientation ExifOrientation) image.Image {
	switch orientation.rotation {
	case left90:
		loadedImage = imaging.Rotate90(loadedImage)
	case rotate180:
		loadedImage = imaging.Rotate180(loadedImage)
	case right90:
		loadedImage = imaging.Rotate270(loadedImage)
	}
	if orientation.flipped {
		return imaging.FlipH(loadedImage)
	}
	return loadedImage
}
