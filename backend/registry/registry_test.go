package registry

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/backend/thumbnail"
)

var thumbnailSize = apitype.SizeOf(150, 150)

type StubCodec struct {
	failures map[string]error
	calls    int
}

func NewStubCodec() *StubCodec {
	return &StubCodec{failures: map[string]error{}}
}

func (s *StubCodec) Decode(path string, maxSize apitype.Size) (*apitype.Thumbnail, error) {
	s.calls++
	if err, ok := s.failures[path]; ok {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, maxSize.Width(), maxSize.Height()))
	return apitype.NewThumbnail(path, apitype.SizeOf(300, 300), img), nil
}

func writePng(t *testing.T, dir string, name string, width int, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, image.NewNRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegistry_Scenario(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	pathA := writePng(t, dir, "a.png", 300, 300)
	pathB := writePng(t, dir, "b.png", 120, 80)

	registry := NewRegistry(thumbnail.NewCodec(), thumbnailSize)

	t.Run("Add a", func(t *testing.T) {
		thumbnailA, err := registry.Add(pathA)
		a.Nil(err)
		a.Equal(1, registry.Count())
		a.LessOrEqual(thumbnailA.Size().LongestSide(), 150)
	})
	t.Run("Add b", func(t *testing.T) {
		_, err := registry.Add(pathB)
		a.Nil(err)
		a.Equal([]string{pathB, pathA}, registry.ListAll())
	})
	t.Run("Remove b", func(t *testing.T) {
		a.True(registry.Remove(pathB))
		a.Equal([]string{pathA}, registry.ListAll())
		a.Equal(1, registry.Count())
	})
	t.Run("Remove a", func(t *testing.T) {
		a.True(registry.Remove(pathA))
		a.Equal(0, registry.Count())
	})
	t.Run("Add missing", func(t *testing.T) {
		_, err := registry.Add(pathA)
		a.Nil(err)

		thumbnailMissing, err := registry.Add(filepath.Join(dir, "missing.png"))

		a.Nil(thumbnailMissing)
		var notFound *apitype.NotFoundError
		a.True(errors.As(err, &notFound))
		a.Equal(1, registry.Count())
	})
}

func TestRegistry_AddDecodeErrorLeavesStateUnchanged(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	valid := writePng(t, dir, "valid.png", 10, 10)
	corrupt := filepath.Join(dir, "corrupt.png")
	a.Nil(os.WriteFile(corrupt, []byte("garbage"), 0600))

	registry := NewRegistry(thumbnail.NewCodec(), thumbnailSize)
	_, err := registry.Add(valid)
	a.Nil(err)

	thumbnailCorrupt, err := registry.Add(corrupt)

	a.Nil(thumbnailCorrupt)
	var decodeError *apitype.DecodeError
	a.True(errors.As(err, &decodeError))
	a.Equal(1, registry.Count())
	a.Equal([]string{valid}, registry.ListAll())
	_, found := registry.GetThumbnail(corrupt)
	a.False(found)
}

func TestRegistry_AddDuplicate(t *testing.T) {
	a := assert.New(t)

	codec := NewStubCodec()
	registry := NewRegistry(codec, thumbnailSize)

	first, err := registry.Add("a.png")
	a.Nil(err)

	second, err := registry.Add("a.png")

	a.Nil(second)
	var duplicate *apitype.DuplicateError
	a.True(errors.As(err, &duplicate))
	a.Equal(1, registry.Count())
	a.Equal(1, codec.calls)
	stored, _ := registry.GetThumbnail("a.png")
	a.Same(first, stored)
	a.True(first.IsValid())
}

func TestRegistry_Remove(t *testing.T) {
	a := assert.New(t)

	registry := NewRegistry(NewStubCodec(), thumbnailSize)
	for _, path := range []string{"a.png", "b.png", "c.png"} {
		_, err := registry.Add(path)
		a.Nil(err)
	}

	t.Run("Absent path", func(t *testing.T) {
		a.False(registry.Remove("missing.png"))
		a.Equal(3, registry.Count())
		a.Equal([]string{"c.png", "b.png", "a.png"}, registry.ListAll())
	})
	t.Run("Middle entry releases thumbnail", func(t *testing.T) {
		removed, _ := registry.GetThumbnail("b.png")

		a.True(registry.Remove("b.png"))

		a.Equal(2, registry.Count())
		a.Equal([]string{"c.png", "a.png"}, registry.ListAll())
		a.False(removed.IsValid())
		_, found := registry.GetThumbnail("b.png")
		a.False(found)
	})
	t.Run("Second remove is a no-op", func(t *testing.T) {
		a.False(registry.Remove("b.png"))
		a.Equal(2, registry.Count())
	})
}

func TestRegistry_Insert(t *testing.T) {
	a := assert.New(t)

	registry := NewRegistry(NewStubCodec(), thumbnailSize)
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	t.Run("Valid", func(t *testing.T) {
		a.Nil(registry.Insert("a.png", apitype.NewThumbnail("a.png", apitype.SizeOf(10, 10), img)))
		a.Equal([]string{"a.png"}, registry.ListAll())
	})
	t.Run("Duplicate releases the incoming thumbnail", func(t *testing.T) {
		incoming := apitype.NewThumbnail("a.png", apitype.SizeOf(10, 10), img)

		err := registry.Insert("a.png", incoming)

		var duplicate *apitype.DuplicateError
		a.True(errors.As(err, &duplicate))
		a.False(incoming.IsValid())
		stored, _ := registry.GetThumbnail("a.png")
		a.True(stored.IsValid())
	})
	t.Run("Released thumbnail is rejected", func(t *testing.T) {
		released := apitype.NewThumbnail("b.png", apitype.SizeOf(10, 10), img)
		released.Release()

		err := registry.Insert("b.png", released)

		var decodeError *apitype.DecodeError
		a.True(errors.As(err, &decodeError))
		a.Equal(1, registry.Count())
	})
}

func TestRegistry_ListAllIsACopy(t *testing.T) {
	a := assert.New(t)

	registry := NewRegistry(NewStubCodec(), thumbnailSize)
	_, _ = registry.Add("a.png")
	_, _ = registry.Add("b.png")

	paths := registry.ListAll()
	paths[0] = "changed.png"
	entries := registry.Entries()
	entries[0] = nil

	a.Equal([]string{"b.png", "a.png"}, registry.ListAll())
	a.Equal("b.png", registry.Entries()[0].Path())
}

func TestRegistry_Clear(t *testing.T) {
	a := assert.New(t)

	registry := NewRegistry(NewStubCodec(), thumbnailSize)
	_, _ = registry.Add("a.png")
	thumbnailB, _ := registry.Add("b.png")

	registry.Clear()
	a.Equal(0, registry.Count())
	a.Equal([]string{}, registry.ListAll())
	a.False(thumbnailB.IsValid())

	registry.Clear()
	a.Equal(0, registry.Count())
	a.Equal([]string{}, registry.ListAll())

	_, err := registry.Add("a.png")
	a.Nil(err)
	a.Equal(1, registry.Count())

	registry.Close()
	a.Equal(0, registry.Count())
}

func TestRegistry_RandomOperationsKeepInvariants(t *testing.T) {
	a := assert.New(t)

	codec := NewStubCodec()
	codec.failures["broken-3.png"] = &apitype.DecodeError{Path: "broken-3.png", Cause: errors.New("corrupt")}
	registry := NewRegistry(codec, thumbnailSize)
	random := rand.New(rand.NewSource(42))

	var expected []string
	for i := 0; i < 500; i++ {
		path := fmt.Sprintf("image-%d.png", random.Intn(20))
		if random.Intn(10) == 0 {
			path = "broken-3.png"
		}
		if random.Intn(3) == 0 {
			removed := registry.Remove(path)
			index := indexOf(expected, path)
			a.Equal(index >= 0, removed)
			if index >= 0 {
				expected = append(expected[:index], expected[index+1:]...)
			}
		} else {
			_, err := registry.Add(path)
			if indexOf(expected, path) >= 0 || path == "broken-3.png" {
				a.NotNil(err)
			} else if a.Nil(err) {
				expected = append([]string{path}, expected...)
			}
		}

		a.Equal(len(expected), registry.Count())
		a.Equal(len(expected), len(registry.thumbnails))
		if len(expected) == 0 {
			a.Empty(registry.ListAll())
		} else {
			a.Equal(expected, registry.ListAll())
		}
		for _, path := range expected {
			thumbnail, found := registry.GetThumbnail(path)
			a.True(found)
			a.True(thumbnail.IsValid())
		}
	}
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
