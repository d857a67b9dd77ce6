package api

import "vincit.fi/image-location-extractor/api/apitype"

// ThumbnailCodec turns an image file into a thumbnail that fits maxSize.
// Failures are *apitype.NotFoundError or *apitype.DecodeError.
type ThumbnailCodec interface {
	Decode(path string, maxSize apitype.Size) (*apitype.Thumbnail, error)
}

type ImageRegistry interface {
	Add(path string) (*apitype.Thumbnail, error)
	Insert(path string, thumbnail *apitype.Thumbnail) error
	Remove(path string) bool
	GetThumbnail(path string) (*apitype.Thumbnail, bool)
	ListAll() []string
	Entries() []*apitype.ImageEntry
	Count() int
	Clear()
	ThumbnailSize() apitype.Size
}

// FilePicker returns an empty path when the user cancels.
type FilePicker interface {
	PickImage() (string, error)
}
