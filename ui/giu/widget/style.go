package widget

import (
	g "github.com/AllenDang/giu"
	"vincit.fi/image-location-extractor/ui/theme"
)

// Button wraps button with the colors and padding of style.
func Button(style theme.ButtonStyle, button *g.ButtonWidget) g.Widget {
	return g.Style().
		SetColor(g.StyleColorButton, style.Background).
		SetColor(g.StyleColorButtonHovered, style.ActiveBackground).
		SetColor(g.StyleColorButtonActive, style.ActiveBackground).
		SetColor(g.StyleColorText, style.Foreground).
		SetStyle(g.StyleVarFramePadding, float32(style.PaddingX), float32(style.PaddingY)).
		To(button)
}

func Label(style theme.LabelStyle, text string) g.Widget {
	label := g.Label(text)
	if style.WrapWidth > 0 {
		label.Wrapped(true)
		return g.Style().
			SetColor(g.StyleColorText, style.Foreground).
			To(g.Child().
				Border(false).
				Size(float32(style.WrapWidth), float32(style.Font.Size*2+4)).
				Flags(g.WindowFlagsNoScrollbar).
				Layout(label))
	}
	return g.Style().
		SetColor(g.StyleColorText, style.Foreground).
		To(label)
}
