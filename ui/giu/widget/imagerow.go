package widget

import (
	"image"
	"image/color"

	g "github.com/AllenDang/giu"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/ui/component"
	"vincit.fi/image-location-extractor/ui/theme"
)

const rowTextWidth = 200

var placeholderColor = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}

// ImageRowWidget draws one uploaded image: thumbnail, file name, full path
// and a delete button.
type ImageRowWidget struct {
	row           *component.ImageRow
	texture       *g.Texture
	style         theme.RowStyle
	thumbnailSize apitype.Size
	onDelete      func(component.DeleteCommand)
}

func ImageRow(row *component.ImageRow, texture *g.Texture, style theme.RowStyle, thumbnailSize apitype.Size, onDelete func(component.DeleteCommand)) *ImageRowWidget {
	return &ImageRowWidget{
		row:           row,
		texture:       texture,
		style:         style,
		thumbnailSize: thumbnailSize,
		onDelete:      onDelete,
	}
}

func (s *ImageRowWidget) Build() {
	padding := float32(s.style.Frame.Padding)
	rowHeight := float32(s.thumbnailSize.Height()) + 2*padding

	deleteCommand := s.row.DeleteCommand()
	deleteButton := Button(s.style.DeleteButton,
		g.Button("Delete##"+string(s.row.Id())).OnClick(func() {
			s.onDelete(deleteCommand)
		}))

	g.Style().
		SetColor(g.StyleColorChildBg, s.style.Frame.Background).
		SetStyle(g.StyleVarWindowPadding, padding, padding).
		To(
			g.Child().
				Border(s.style.Frame.BorderWidth > 0).
				Size(-1, rowHeight).
				Flags(g.WindowFlagsNoScrollbar).
				Layout(
					g.Row(
						s.thumbnail(),
						g.Column(
							Label(s.style.FileName, s.row.FileName()),
							Label(s.style.Path, s.row.Path()),
						),
						deleteButton,
					),
				),
		).Build()
}

func (s *ImageRowWidget) thumbnail() g.Widget {
	size := s.row.Thumbnail().Size()
	if s.texture == nil || s.row.RenderFailed() || size.IsEmpty() {
		return g.Custom(func() {
			canvas := g.GetCanvas()
			start := g.GetCursorScreenPos()
			end := start.Add(image.Pt(s.thumbnailSize.Width(), s.thumbnailSize.Height()))
			canvas.AddRectFilled(start, end, placeholderColor, 0, g.DrawFlagsNone)
			g.Dummy(float32(s.thumbnailSize.Width()), float32(s.thumbnailSize.Height())).Build()
		})
	}
	return g.Image(s.texture).Size(float32(size.Width()), float32(size.Height()))
}
