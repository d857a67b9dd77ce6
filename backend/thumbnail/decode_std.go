//go:build !libjpeg

package thumbnail

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"vincit.fi/image-location-extractor/api/apitype"
)

func decodeImage(reader io.Reader, _ apitype.Size) (image.Image, error) {
	return imaging.Decode(reader)
}
