package theme

import "image/color"

type Font struct {
	Family string
	Size   int
	Bold   bool
}

type FrameStyle struct {
	Background  color.RGBA
	BorderWidth int
	Padding     int
	Radius      int
}

type LabelStyle struct {
	Background color.RGBA
	Foreground color.RGBA
	Font       Font
	WrapWidth  int
}

type ButtonStyle struct {
	Background       color.RGBA
	Foreground       color.RGBA
	ActiveBackground color.RGBA
	PaddingX         int
	PaddingY         int
	Font             Font
	Radius           int
}

// RowStyle is used for one entry of the uploaded images list.
type RowStyle struct {
	Frame        FrameStyle
	FileName     LabelStyle
	Path         LabelStyle
	DeleteButton ButtonStyle
}

type Styles struct {
	Page          FrameStyle
	Frame         FrameStyle
	Title         LabelStyle
	Label         LabelStyle
	Button        ButtonStyle
	PrimaryButton ButtonStyle
	Row           RowStyle
}

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func (s Theme) Styles() Styles {
	baseFont := Font{Family: s.FontName(), Size: s.FontSize}
	surface := s.mustColor(s.Surface)
	text := s.mustColor(s.Text)

	return Styles{
		Page: FrameStyle{
			Background: s.mustColor(s.Background),
			Padding:    s.Spacing * 2,
		},
		Frame: FrameStyle{
			Background: surface,
			Radius:     s.Radius,
		},
		Title: LabelStyle{
			Background: s.mustColor(s.Background),
			Foreground: text,
			Font:       Font{Family: baseFont.Family, Size: s.FontSize + 6, Bold: true},
		},
		Label: LabelStyle{
			Background: surface,
			Foreground: text,
			Font:       baseFont,
		},
		Button: ButtonStyle{
			Background:       surface,
			Foreground:       text,
			ActiveBackground: surface,
			PaddingX:         s.Spacing,
			PaddingY:         maxInt(4, s.Spacing/2),
			Font:             baseFont,
			Radius:           s.Radius,
		},
		PrimaryButton: ButtonStyle{
			Background:       s.mustColor(s.Primary),
			Foreground:       white,
			ActiveBackground: s.mustColor(s.PrimaryDark),
			PaddingX:         s.Spacing,
			PaddingY:         maxInt(6, s.Spacing*3/4),
			Font:             baseFont,
			Radius:           s.Radius,
		},
		Row: RowStyle{
			Frame: FrameStyle{
				Background:  surface,
				BorderWidth: 1,
				Padding:     s.Spacing,
				Radius:      s.Radius,
			},
			FileName: LabelStyle{
				Background: surface,
				Foreground: text,
				Font:       Font{Family: baseFont.Family, Size: maxInt(8, s.FontSize-2), Bold: true},
				WrapWidth:  200,
			},
			Path: LabelStyle{
				Background: surface,
				Foreground: s.mustColor(s.Muted),
				Font:       Font{Family: baseFont.Family, Size: maxInt(6, s.FontSize-4)},
				WrapWidth:  200,
			},
			DeleteButton: ButtonStyle{
				Background:       s.mustColor(s.Danger),
				Foreground:       white,
				ActiveBackground: s.mustColor(s.Danger),
				PaddingX:         10,
				PaddingY:         5,
				Font:             baseFont,
				Radius:           s.Radius,
			},
		},
	}
}
