package background

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

// Scaler stretches the start page background to the window size. The image
// is only resized when the requested size differs from the previous one.
type Scaler struct {
	original image.Image
	lastSize apitype.Size
	scaled   image.Image
}

func NewScaler(path string) (*Scaler, error) {
	original, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Debug.Printf("Loaded background '%s' (%s)", path, apitype.SizeFromRectangle(original.Bounds()))
	return NewScalerFromImage(original), nil
}

func NewScalerFromImage(original image.Image) *Scaler {
	return &Scaler{
		original: original,
	}
}

func (s *Scaler) HasImage() bool {
	return s != nil && s.original != nil
}

// ScaledTo returns the background for size and whether it was resized by
// this call.
func (s *Scaler) ScaledTo(size apitype.Size) (image.Image, bool) {
	if !s.HasImage() || size.IsEmpty() {
		return nil, false
	}
	if s.scaled != nil && size == s.lastSize {
		return s.scaled, false
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Background size changed from %s to %s", s.lastSize, size)
	}
	s.lastSize = size
	s.scaled = resize.Resize(uint(size.Width()), uint(size.Height()), s.original, resize.Lanczos3)
	return s.scaled, true
}

func (s *Scaler) LastSize() apitype.Size {
	if s == nil {
		return apitype.Size{}
	}
	return s.lastSize
}
