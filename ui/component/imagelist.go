package component

import (
	"errors"

	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

// RowRenderer creates and destroys the toolkit resources of a row.
// Render failures are *apitype.RenderError.
type RowRenderer interface {
	Render(row *ImageRow) error
	Destroy(row *ImageRow)
}

// ImageList keeps one row per registry entry, most recent first.
type ImageList struct {
	registry api.ImageRegistry
	renderer RowRenderer
	rows     []*ImageRow
}

func NewImageList(registry api.ImageRegistry, renderer RowRenderer) *ImageList {
	return &ImageList{
		registry: registry,
		renderer: renderer,
		rows:     []*ImageRow{},
	}
}

// OnEntryAdded inserts a row for an entry that was just registered.
// A render failure leaves the row in place with a placeholder.
func (s *ImageList) OnEntryAdded(entry *apitype.ImageEntry) *ImageRow {
	row := newImageRow(entry)
	if err := s.renderer.Render(row); err != nil {
		var renderError *apitype.RenderError
		if !errors.As(err, &renderError) {
			err = &apitype.RenderError{Path: entry.Path(), Cause: err}
		}
		logger.Warn.Printf("Showing placeholder for '%s': %s", entry.Path(), err)
		row.renderFailed = true
	}

	s.rows = append([]*ImageRow{row}, s.rows...)
	logger.Info.Printf("Total images: %d", s.registry.Count())
	return row
}

func (s *ImageList) Delete(command DeleteCommand) {
	s.OnDeleteRequested(command.Path, command.RowId)
}

// OnDeleteRequested removes path from the registry and destroys the row.
// The row is destroyed even if the registry no longer had the path.
func (s *ImageList) OnDeleteRequested(path string, rowId RowId) {
	index := s.indexOf(rowId)
	if index < 0 {
		logger.Warn.Printf("No row %s for '%s'", rowId, path)
		return
	}
	row := s.rows[index]
	if !row.transition(PendingDelete) {
		logger.Warn.Printf("Ignoring delete of %s", row)
		return
	}

	if !s.registry.Remove(path) {
		logger.Warn.Printf("'%s' was not registered", path)
	}
	s.destroy(index)

	logger.Info.Printf("Deleted: %s", apitype.FileNameOf(path))
	logger.Info.Printf("Total images: %d", s.registry.Count())
}

func (s *ImageList) destroy(index int) {
	row := s.rows[index]
	s.renderer.Destroy(row)
	row.transition(Removed)
	row.thumbnail = nil

	copy(s.rows[index:], s.rows[index+1:])
	s.rows[len(s.rows)-1] = nil
	s.rows = s.rows[:len(s.rows)-1]
}

func (s *ImageList) indexOf(rowId RowId) int {
	for i, row := range s.rows {
		if row.id == rowId {
			return i
		}
	}
	return -1
}

// Rows returns the displayed rows, most recent first.
func (s *ImageList) Rows() []*ImageRow {
	rows := make([]*ImageRow, len(s.rows))
	copy(rows, s.rows)
	return rows
}

func (s *ImageList) RowCount() int {
	return len(s.rows)
}

// Reset destroys every row without touching the registry.
func (s *ImageList) Reset() {
	for len(s.rows) > 0 {
		s.rows[0].transition(PendingDelete)
		s.destroy(0)
	}
}
