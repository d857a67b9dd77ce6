package background

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-location-extractor/api/apitype"
)

func TestScaler_ScaledTo(t *testing.T) {
	a := assert.New(t)

	scaler := NewScalerFromImage(image.NewNRGBA(image.Rect(0, 0, 64, 48)))

	t.Run("First call resizes", func(t *testing.T) {
		scaled, changed := scaler.ScaledTo(apitype.SizeOf(700, 500))
		a.True(changed)
		a.Equal(apitype.SizeOf(700, 500), apitype.SizeFromRectangle(scaled.Bounds()))
	})
	t.Run("Same size is cached", func(t *testing.T) {
		first, _ := scaler.ScaledTo(apitype.SizeOf(700, 500))
		second, changed := scaler.ScaledTo(apitype.SizeOf(700, 500))
		a.False(changed)
		a.Same(first, second)
	})
	t.Run("New size resizes again", func(t *testing.T) {
		scaled, changed := scaler.ScaledTo(apitype.SizeOf(800, 600))
		a.True(changed)
		a.Equal(apitype.SizeOf(800, 600), apitype.SizeFromRectangle(scaled.Bounds()))
		a.Equal(apitype.SizeOf(800, 600), scaler.LastSize())
	})
	t.Run("Empty size", func(t *testing.T) {
		scaled, changed := scaler.ScaledTo(apitype.SizeOf(0, 600))
		a.Nil(scaled)
		a.False(changed)
	})
}

func TestScaler_WithoutImage(t *testing.T) {
	a := assert.New(t)

	var scaler *Scaler
	a.False(scaler.HasImage())
	scaled, changed := scaler.ScaledTo(apitype.SizeOf(10, 10))
	a.Nil(scaled)
	a.False(changed)
	a.Equal(apitype.Size{}, scaler.LastSize())
}

func TestNewScaler(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()

	t.Run("Missing file", func(t *testing.T) {
		scaler, err := NewScaler(filepath.Join(dir, "photo-location.webp"))
		a.NotNil(err)
		a.Nil(scaler)
	})
	t.Run("Valid file", func(t *testing.T) {
		path := filepath.Join(dir, "background.png")
		file, err := os.Create(path)
		a.Nil(err)
		a.Nil(png.Encode(file, image.NewNRGBA(image.Rect(0, 0, 8, 8))))
		a.Nil(file.Close())

		scaler, err := NewScaler(path)
		a.Nil(err)
		a.True(scaler.HasImage())
	})
}
