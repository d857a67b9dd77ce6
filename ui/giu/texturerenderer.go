package giu

import (
	"errors"

	g "github.com/AllenDang/giu"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/backend/thumbnail"
	"vincit.fi/image-location-extractor/common/logger"
	"vincit.fi/image-location-extractor/common/uithread"
	"vincit.fi/image-location-extractor/ui/component"
)

var errReleasedThumbnail = errors.New("thumbnail has been released")

// TextureRenderer uploads row thumbnails as textures. Textures are created
// asynchronously by giu and handed back through the UI thread queue, so all
// state is only touched on the UI thread.
type TextureRenderer struct {
	queue    *uithread.Queue
	textures map[component.RowId]*g.Texture
}

var _ component.RowRenderer = (*TextureRenderer)(nil)

func NewTextureRenderer(queue *uithread.Queue) *TextureRenderer {
	return &TextureRenderer{
		queue:    queue,
		textures: map[component.RowId]*g.Texture{},
	}
}

func (s *TextureRenderer) Render(row *component.ImageRow) error {
	img := row.Thumbnail().Image()
	if img == nil {
		return &apitype.RenderError{Path: row.Path(), Cause: errReleasedThumbnail}
	}

	rowId := row.Id()
	s.textures[rowId] = nil
	g.NewTextureFromRgba(thumbnail.ToRGBA(img), func(texture *g.Texture) {
		s.queue.Post(func() {
			s.loaded(rowId, texture)
		})
	})
	return nil
}

func (s *TextureRenderer) loaded(rowId component.RowId, texture *g.Texture) {
	if _, ok := s.textures[rowId]; !ok {
		logger.Trace.Printf("Row %s was destroyed before its texture loaded", rowId)
		return
	}
	s.textures[rowId] = texture
}

func (s *TextureRenderer) Destroy(row *component.ImageRow) {
	delete(s.textures, row.Id())
}

// Texture is nil while the texture is still loading.
func (s *TextureRenderer) Texture(rowId component.RowId) *g.Texture {
	return s.textures[rowId]
}
