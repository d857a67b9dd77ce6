package theme

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme holds the color and layout tokens of the application. It is passed
// by value to everything that renders; nothing reads it globally.
type Theme struct {
	Primary     string `yaml:"primary"`
	PrimaryDark string `yaml:"primaryDark"`
	Accent      string `yaml:"accent"`
	Background  string `yaml:"background"`
	Surface     string `yaml:"surface"`
	Text        string `yaml:"text"`
	Muted       string `yaml:"muted"`
	Success     string `yaml:"success"`
	Danger      string `yaml:"danger"`

	Radius     int    `yaml:"radius"`
	Spacing    int    `yaml:"spacing"`
	FontFamily string `yaml:"fontFamily"`
	FontSize   int    `yaml:"fontSize"`
}

func Default() Theme {
	return Theme{
		Primary:     "#55B158",
		PrimaryDark: "#388E3C",
		Accent:      "#FF6F00",
		Background:  "#F5F7FA",
		Surface:     "#FFFFFF",
		Text:        "#212121",
		Muted:       "#6E6E6E",
		Success:     "#2E7D32",
		Danger:      "#D32F2F",

		Radius:     6,
		Spacing:    8,
		FontFamily: "Segoe UI, Roboto, Helvetica, Arial, sans-serif",
		FontSize:   12,
	}
}

// LoadFile reads a YAML file on top of the default theme. Keys missing from
// the file keep their default value.
func LoadFile(path string) (Theme, error) {
	theme := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return theme, err
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Default(), fmt.Errorf("invalid theme file '%s': %w", path, err)
	}
	if err := theme.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid theme file '%s': %w", path, err)
	}
	return theme, nil
}

func (s Theme) colors() map[string]string {
	return map[string]string{
		"primary":     s.Primary,
		"primaryDark": s.PrimaryDark,
		"accent":      s.Accent,
		"background":  s.Background,
		"surface":     s.Surface,
		"text":        s.Text,
		"muted":       s.Muted,
		"success":     s.Success,
		"danger":      s.Danger,
	}
}

func (s Theme) Validate() error {
	for name, value := range s.colors() {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("color '%s': %w", name, err)
		}
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, was %d", s.FontSize)
	}
	if s.Spacing < 0 || s.Radius < 0 {
		return fmt.Errorf("spacing and radius can't be negative")
	}
	return nil
}

// Color returns the named theme color, e.g. "danger".
func (s Theme) Color(name string) (color.RGBA, error) {
	value, ok := s.colors()[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("no color named '%s' in theme", name)
	}
	return ParseHexColor(value)
}

// ColorRGBA returns the named color as a CSS rgba() string.
func (s Theme) ColorRGBA(name string, alpha float64) (string, error) {
	c, err := s.Color(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(clamp(alpha), 'f', -1, 64)), nil
}

// FontName is the first family of the FontFamily list.
func (s Theme) FontName() string {
	return strings.TrimSpace(strings.Split(s.FontFamily, ",")[0])
}

func (s Theme) mustColor(value string) color.RGBA {
	c, err := ParseHexColor(value)
	if err != nil {
		return color.RGBA{A: 0xFF}
	}
	return c
}

// ParseHexColor parses #RGB and #RRGGBB colors.
func ParseHexColor(value string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color '%s'", value)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color '%s'", value)
	}
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}, nil
}

func clamp(alpha float64) float64 {
	if alpha < 0 {
		return 0
	} else if alpha > 1 {
		return 1
	}
	return alpha
}
