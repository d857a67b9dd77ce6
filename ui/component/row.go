package component

import (
	"fmt"

	"github.com/google/uuid"
	"vincit.fi/image-location-extractor/api/apitype"
)

type RowId string

type RowState uint8

const (
	Displayed RowState = iota
	PendingDelete
	Removed
)

func (s RowState) String() string {
	switch s {
	case Displayed:
		return "Displayed"
	case PendingDelete:
		return "PendingDelete"
	case Removed:
		return "Removed"
	default:
		return fmt.Sprintf("RowState(%d)", uint8(s))
	}
}

// DeleteCommand is bound to a single row when the row is created.
type DeleteCommand struct {
	Path  string
	RowId RowId
}

// ImageRow is the visual entry of one uploaded image. The thumbnail is
// borrowed from the registry and must not be released by the row.
type ImageRow struct {
	id           RowId
	path         string
	fileName     string
	thumbnail    *apitype.Thumbnail
	state        RowState
	renderFailed bool
	onDelete     DeleteCommand
}

func newImageRow(entry *apitype.ImageEntry) *ImageRow {
	id := RowId(uuid.New().String())
	return &ImageRow{
		id:        id,
		path:      entry.Path(),
		fileName:  entry.FileName(),
		thumbnail: entry.Thumbnail(),
		state:     Displayed,
		onDelete: DeleteCommand{
			Path:  entry.Path(),
			RowId: id,
		},
	}
}

func (s *ImageRow) Id() RowId {
	return s.id
}

func (s *ImageRow) Path() string {
	return s.path
}

func (s *ImageRow) FileName() string {
	return s.fileName
}

func (s *ImageRow) Thumbnail() *apitype.Thumbnail {
	return s.thumbnail
}

func (s *ImageRow) State() RowState {
	return s.state
}

// RenderFailed is true when the row is shown with a placeholder instead of
// its thumbnail.
func (s *ImageRow) RenderFailed() bool {
	return s.renderFailed
}

func (s *ImageRow) DeleteCommand() DeleteCommand {
	return s.onDelete
}

func (s *ImageRow) transition(to RowState) bool {
	switch {
	case s.state == Displayed && to == PendingDelete:
	case s.state == PendingDelete && to == Removed:
	default:
		return false
	}
	s.state = to
	return true
}

func (s *ImageRow) String() string {
	return fmt.Sprintf("ImageRow{%s %s %s}", s.id, s.fileName, s.state)
}
