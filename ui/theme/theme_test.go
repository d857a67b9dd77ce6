package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexColor(t *testing.T) {
	a := assert.New(t)

	t.Run("Long form", func(t *testing.T) {
		c, err := ParseHexColor("#D32F2F")
		a.Nil(err)
		a.Equal(color.RGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}, c)
	})
	t.Run("Short form", func(t *testing.T) {
		c, err := ParseHexColor("#fa0")
		a.Nil(err)
		a.Equal(color.RGBA{R: 0xFF, G: 0xAA, B: 0x00, A: 0xFF}, c)
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, value := range []string{"", "#12", "#GGGGGG", "red"} {
			_, err := ParseHexColor(value)
			a.NotNil(err, value)
		}
	})
}

func TestDefault(t *testing.T) {
	a := assert.New(t)

	theme := Default()

	a.Nil(theme.Validate())
	a.Equal("Segoe UI", theme.FontName())
}

func TestTheme_ColorRGBA(t *testing.T) {
	a := assert.New(t)

	theme := Default()

	value, err := theme.ColorRGBA("primary", 0.8)
	a.Nil(err)
	a.Equal("rgba(85,177,88,0.8)", value)

	value, err = theme.ColorRGBA("danger", 3)
	a.Nil(err)
	a.Equal("rgba(211,47,47,1)", value)

	_, err = theme.ColorRGBA("radius", 1)
	a.NotNil(err)
}

func TestTheme_Styles(t *testing.T) {
	a := assert.New(t)

	theme := Default()
	styles := theme.Styles()

	t.Run("Primary button", func(t *testing.T) {
		a.Equal(color.RGBA{R: 0x55, G: 0xB1, B: 0x58, A: 0xFF}, styles.PrimaryButton.Background)
		a.Equal(color.RGBA{R: 0x38, G: 0x8E, B: 0x3C, A: 0xFF}, styles.PrimaryButton.ActiveBackground)
		a.Equal(white, styles.PrimaryButton.Foreground)
		a.Equal(8, styles.PrimaryButton.PaddingX)
		a.Equal(6, styles.PrimaryButton.PaddingY)
	})
	t.Run("Row", func(t *testing.T) {
		a.Equal(color.RGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}, styles.Row.DeleteButton.Background)
		a.Equal(color.RGBA{R: 0x6E, G: 0x6E, B: 0x6E, A: 0xFF}, styles.Row.Path.Foreground)
		a.True(styles.Row.FileName.Font.Bold)
		a.Equal(200, styles.Row.FileName.WrapWidth)
	})
	t.Run("Title", func(t *testing.T) {
		a.Equal(18, styles.Title.Font.Size)
		a.True(styles.Title.Font.Bold)
	})
}

func TestLoadFile(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	t.Run("Overrides keep defaults", func(t *testing.T) {
		path := filepath.Join(dir, "dark.yaml")
		a.Nil(os.WriteFile(path, []byte("background: \"#121212\"\ntext: \"#EEEEEE\"\nfontSize: 14\n"), 0600))

		theme, err := LoadFile(path)

		a.Nil(err)
		a.Equal("#121212", theme.Background)
		a.Equal("#EEEEEE", theme.Text)
		a.Equal(14, theme.FontSize)
		a.Equal(Default().Danger, theme.Danger)
	})
	t.Run("Invalid color", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		a.Nil(os.WriteFile(path, []byte("danger: crimson\n"), 0600))

		theme, err := LoadFile(path)

		a.NotNil(err)
		a.Equal(Default(), theme)
	})
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		a.NotNil(err)
	})
}
