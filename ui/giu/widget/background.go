package widget

import (
	"image"

	g "github.com/AllenDang/giu"
)

// BackgroundWidget fills the available region with a texture and centers
// content of the given size on top of it.
type BackgroundWidget struct {
	texture       *g.Texture
	content       g.Widget
	contentWidth  float32
	contentHeight float32
}

func Background(texture *g.Texture, content g.Widget, contentWidth float32, contentHeight float32) *BackgroundWidget {
	return &BackgroundWidget{
		texture:       texture,
		content:       content,
		contentWidth:  contentWidth,
		contentHeight: contentHeight,
	}
}

func (s *BackgroundWidget) Build() {
	maxW, maxH := g.GetAvailableRegion()
	if s.texture != nil {
		start := g.GetCursorScreenPos()
		end := start.Add(image.Pt(int(maxW), int(maxH)))
		g.GetCanvas().AddImage(s.texture, start, end)
	}

	offsetW := (maxW - s.contentWidth) / 2.0
	offsetH := (maxH - s.contentHeight) / 2.0
	if offsetW < 0 {
		offsetW = 0
	}
	if offsetH < 0 {
		offsetH = 0
	}

	g.Column(
		g.Dummy(1, offsetH),
		g.Row(g.Dummy(offsetW, 1), s.content),
	).Build()
}
