//go:build libjpeg

package thumbnail

import (
	"bufio"
	"bytes"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"vincit.fi/image-location-extractor/api/apitype"
)

var jpegMagic = []byte{0xFF, 0xD8, 0xFF}

// libjpeg can decode straight to a reduced DCT scale which is much faster
// than decoding the full image and scaling it down afterwards.
func decodeImage(reader io.Reader, maxSize apitype.Size) (image.Image, error) {
	buffered := bufio.NewReader(reader)
	if header, err := buffered.Peek(len(jpegMagic)); err == nil && bytes.Equal(header, jpegMagic) {
		return jpeg.Decode(buffered, &jpeg.DecoderOptions{
			ScaleTarget: image.Rect(0, 0, maxSize.Width(), maxSize.Height()),
		})
	}
	return imaging.Decode(buffered)
}
