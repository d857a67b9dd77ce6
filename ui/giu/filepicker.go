package giu

import (
	"errors"

	"github.com/OpenDiablo2/dialog"
	"vincit.fi/image-location-extractor/api"
)

type DialogFilePicker struct {
	title string
}

var _ api.FilePicker = (*DialogFilePicker)(nil)

func NewDialogFilePicker() *DialogFilePicker {
	return &DialogFilePicker{
		title: "Select an image",
	}
}

// PickImage opens the native file dialog. Cancelling returns an empty path.
func (s *DialogFilePicker) PickImage() (string, error) {
	path, err := dialog.File().
		Title(s.title).
		Filter("Image files", "jpg", "jpeg", "png", "gif", "webp").
		Filter("All files", "*").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	return path, err
}
