package component

import (
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

const loadErrorMessage = "Could not load image"

// ThumbnailLoader decodes off the UI thread. Results come back through
// OnThumbnailDecoded.
type ThumbnailLoader interface {
	Request(path string) uint64
	Accept(command *api.ThumbnailDecodedCommand) bool
}

// UploadController connects the file picker, the registry and the list.
type UploadController struct {
	picker   api.FilePicker
	registry api.ImageRegistry
	list     *ImageList
	loader   ThumbnailLoader
	sender   api.Sender
}

func NewUploadController(picker api.FilePicker, registry api.ImageRegistry, list *ImageList, sender api.Sender) *UploadController {
	return &UploadController{
		picker:   picker,
		registry: registry,
		list:     list,
		sender:   sender,
	}
}

// WithLoader makes uploads decode in the background.
func (s *UploadController) WithLoader(loader ThumbnailLoader) *UploadController {
	s.loader = loader
	return s
}

// UploadImage asks the user for an image and adds it. Cancelling the picker
// does nothing.
func (s *UploadController) UploadImage() {
	path, err := s.picker.PickImage()
	if err != nil {
		s.sender.SendError("Could not open file dialog", err)
		return
	}
	if path == "" {
		logger.Debug.Print("No image selected")
		return
	}
	s.AddImage(path)
}

func (s *UploadController) AddImage(path string) {
	if s.loader != nil {
		if _, found := s.registry.GetThumbnail(path); found {
			s.sender.SendError(loadErrorMessage, &apitype.DuplicateError{Path: path})
			return
		}
		generation := s.loader.Request(path)
		logger.Debug.Printf("Requested thumbnail %d for '%s'", generation, path)
		return
	}

	thumbnail, err := s.registry.Add(path)
	if err != nil {
		logger.Warn.Printf("Could not add '%s': %s", path, err)
		s.sender.SendError(loadErrorMessage, err)
		return
	}
	s.list.OnEntryAdded(apitype.NewImageEntry(path, thumbnail))
}

// OnThumbnailDecoded must be called on the UI thread.
func (s *UploadController) OnThumbnailDecoded(command *api.ThumbnailDecodedCommand) {
	if s.loader == nil || !s.loader.Accept(command) {
		command.Thumbnail.Release()
		return
	}
	if command.Err != nil {
		logger.Warn.Printf("Could not add '%s': %s", command.Path, command.Err)
		s.sender.SendError(loadErrorMessage, command.Err)
		return
	}
	if err := s.registry.Insert(command.Path, command.Thumbnail); err != nil {
		logger.Warn.Printf("Could not add '%s': %s", command.Path, err)
		s.sender.SendError(loadErrorMessage, err)
		return
	}
	s.list.OnEntryAdded(apitype.NewImageEntry(command.Path, command.Thumbnail))
}
