package apitype

import (
	"image"
	"path/filepath"

	"github.com/google/uuid"
)

type ThumbnailId string

const NoThumbnail = ThumbnailId("")

// Thumbnail is a decoded image bounded to the registry thumbnail size.
// The registry entry that created it owns it; views only borrow it.
type Thumbnail struct {
	id           ThumbnailId
	path         string
	originalSize Size
	img          image.Image
}

func NewThumbnail(path string, originalSize Size, img image.Image) *Thumbnail {
	return &Thumbnail{
		id:           ThumbnailId(uuid.New().String()),
		path:         path,
		originalSize: originalSize,
		img:          img,
	}
}

func (s *Thumbnail) IsValid() bool {
	return s != nil && s.img != nil
}

func (s *Thumbnail) Id() ThumbnailId {
	if s != nil {
		return s.id
	}
	return NoThumbnail
}

func (s *Thumbnail) Path() string {
	if s != nil {
		return s.path
	}
	return ""
}

func (s *Thumbnail) Image() image.Image {
	if s != nil {
		return s.img
	}
	return nil
}

func (s *Thumbnail) OriginalSize() Size {
	if s != nil {
		return s.originalSize
	}
	return Size{}
}

func (s *Thumbnail) Size() Size {
	if s.IsValid() {
		return SizeFromRectangle(s.img.Bounds())
	}
	return Size{}
}

// Release drops the pixel data. Safe to call more than once.
func (s *Thumbnail) Release() {
	if s != nil {
		s.img = nil
	}
}

func (s *Thumbnail) String() string {
	if s == nil {
		return "Thumbnail<nil>"
	} else if !s.IsValid() {
		return "Thumbnail<released>"
	}
	return "Thumbnail{" + s.path + " " + s.Size().String() + "}"
}

type ImageEntry struct {
	path      string
	thumbnail *Thumbnail
}

func NewImageEntry(path string, thumbnail *Thumbnail) *ImageEntry {
	return &ImageEntry{
		path:      path,
		thumbnail: thumbnail,
	}
}

func (s *ImageEntry) Path() string {
	return s.path
}

func (s *ImageEntry) FileName() string {
	return FileNameOf(s.path)
}

func (s *ImageEntry) Thumbnail() *Thumbnail {
	return s.thumbnail
}

func FileNameOf(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
