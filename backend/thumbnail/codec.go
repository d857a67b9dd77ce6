package thumbnail

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

var errNotRegularFile = errors.New("not a regular file")

// Codec decodes image files into bounded thumbnails. Supported formats are
// the ones registered to image.Decode: jpeg, png, gif, bmp, tiff and webp.
type Codec struct {
	filter imaging.ResampleFilter
}

func NewCodec() *Codec {
	return &Codec{
		filter: imaging.Lanczos,
	}
}

var _ api.ThumbnailCodec = (*Codec)(nil)

func (s *Codec) Decode(path string, maxSize apitype.Size) (thumbnail *apitype.Thumbnail, err error) {
	if maxSize.IsEmpty() {
		return nil, &apitype.DecodeError{Path: path, Cause: fmt.Errorf("invalid thumbnail size %s", maxSize)}
	}

	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &apitype.NotFoundError{Path: path}
		}
		return nil, &apitype.DecodeError{Path: path, Cause: err}
	}
	if !stat.Mode().IsRegular() {
		return nil, &apitype.DecodeError{Path: path, Cause: errNotRegularFile}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("Decoder panicked on '%s': %v", path, r)
			thumbnail = nil
			err = &apitype.DecodeError{Path: path, Cause: fmt.Errorf("decoder panic: %v", r)}
		}
	}()

	startTime := time.Now()
	file, err := os.Open(path)
	if err != nil {
		return nil, &apitype.DecodeError{Path: path, Cause: err}
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, &apitype.DecodeError{Path: path, Cause: err}
	}

	orientation := readOrientation(file, path)

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, &apitype.DecodeError{Path: path, Cause: err}
	}
	loadedImage, err := decodeImage(file, maxSize)
	if err != nil {
		return nil, &apitype.DecodeError{Path: path, Cause: err}
	}

	originalSize := apitype.SizeOf(config.Width, config.Height)
	if !orientation.IsUnchanged() {
		loadedImage = apitype.ExifRotateImage(loadedImage, orientation)
		if orientation.Rotation()%180 != 0 {
			originalSize = apitype.SizeOf(config.Height, config.Width)
		}
	}

	thumbnailSize := apitype.FitWithin(apitype.SizeFromRectangle(loadedImage.Bounds()), maxSize)
	thumbnailImage := imaging.Fit(loadedImage, thumbnailSize.Width(), thumbnailSize.Height(), s.filter)

	if logger.IsLogLevel(logger.DEBUG) {
		logger.Debug.Printf("'%s': Thumbnail %s from %s loaded in %s",
			path, apitype.SizeFromRectangle(thumbnailImage.Bounds()), originalSize, time.Since(startTime))
	}
	return apitype.NewThumbnail(path, originalSize, thumbnailImage), nil
}

// Missing or broken EXIF data only means the image is shown as stored.
func readOrientation(file io.ReadSeeker, path string) apitype.ExifOrientation {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return apitype.NoExifOrientation
	}
	orientation, err := apitype.ReadExifOrientation(file)
	if err != nil {
		if logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("No EXIF orientation for '%s': %s", path, err)
		}
		return apitype.NoExifOrientation
	}
	return orientation
}
