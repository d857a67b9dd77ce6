package registry

import (
	"errors"

	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

var errInvalidThumbnail = errors.New("thumbnail is missing or released")

// Registry holds the images uploaded during the session together with their
// thumbnails. Entries are unique by path and listed most recent first.
//
// Entries are stored oldest first so that adding is an append; every read
// reverses the order. The thumbnails map always has exactly the keys of
// entries.
//
// Registry is not safe for concurrent use. It is owned by the UI thread.
type Registry struct {
	codec         api.ThumbnailCodec
	thumbnailSize apitype.Size
	entries       []*apitype.ImageEntry
	thumbnails    map[string]*apitype.Thumbnail
}

var _ api.ImageRegistry = (*Registry)(nil)

func NewRegistry(codec api.ThumbnailCodec, thumbnailSize apitype.Size) *Registry {
	return &Registry{
		codec:         codec,
		thumbnailSize: thumbnailSize,
		entries:       []*apitype.ImageEntry{},
		thumbnails:    map[string]*apitype.Thumbnail{},
	}
}

func (s *Registry) ThumbnailSize() apitype.Size {
	return s.thumbnailSize
}

// Add decodes the image at path and registers it first in the list.
// On any error the registry is left untouched.
func (s *Registry) Add(path string) (*apitype.Thumbnail, error) {
	if _, exists := s.thumbnails[path]; exists {
		return nil, &apitype.DuplicateError{Path: path}
	}

	thumbnail, err := s.codec.Decode(path, s.thumbnailSize)
	if err != nil {
		return nil, err
	}
	if !thumbnail.IsValid() {
		return nil, &apitype.DecodeError{Path: path, Cause: errInvalidThumbnail}
	}

	s.insertFirst(path, thumbnail)
	return thumbnail, nil
}

// Insert registers a thumbnail decoded elsewhere. A rejected thumbnail is
// released.
func (s *Registry) Insert(path string, thumbnail *apitype.Thumbnail) error {
	if !thumbnail.IsValid() {
		return &apitype.DecodeError{Path: path, Cause: errInvalidThumbnail}
	}
	if _, exists := s.thumbnails[path]; exists {
		thumbnail.Release()
		return &apitype.DuplicateError{Path: path}
	}

	s.insertFirst(path, thumbnail)
	return nil
}

func (s *Registry) insertFirst(path string, thumbnail *apitype.Thumbnail) {
	s.entries = append(s.entries, apitype.NewImageEntry(path, thumbnail))
	s.thumbnails[path] = thumbnail
	logger.Debug.Printf("Registered '%s' as %s", path, thumbnail)
}

// Remove unregisters path and releases its thumbnail. Returns false when
// path was not registered.
func (s *Registry) Remove(path string) bool {
	index := s.indexOf(path)
	if index < 0 {
		return false
	}

	copy(s.entries[index:], s.entries[index+1:])
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]

	if thumbnail, ok := s.thumbnails[path]; ok {
		thumbnail.Release()
		delete(s.thumbnails, path)
	}
	logger.Debug.Printf("Unregistered '%s'", path)
	return true
}

func (s *Registry) indexOf(path string) int {
	for i, entry := range s.entries {
		if entry.Path() == path {
			return i
		}
	}
	return -1
}

func (s *Registry) GetThumbnail(path string) (*apitype.Thumbnail, bool) {
	thumbnail, ok := s.thumbnails[path]
	return thumbnail, ok
}

// ListAll returns the registered paths, most recent first. The returned
// slice is a copy.
func (s *Registry) ListAll() []string {
	paths := make([]string, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		paths = append(paths, s.entries[i].Path())
	}
	return paths
}

// Entries returns the registered entries, most recent first.
func (s *Registry) Entries() []*apitype.ImageEntry {
	entries := make([]*apitype.ImageEntry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		entries = append(entries, s.entries[i])
	}
	return entries
}

func (s *Registry) Count() int {
	return len(s.entries)
}

func (s *Registry) Clear() {
	for _, thumbnail := range s.thumbnails {
		thumbnail.Release()
	}
	s.entries = []*apitype.ImageEntry{}
	s.thumbnails = map[string]*apitype.Thumbnail{}
}

func (s *Registry) Close() {
	logger.Info.Printf("Shutting down image registry with %d images", s.Count())
	s.Clear()
}
