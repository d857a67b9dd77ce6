package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
)

type StubSender struct {
	mux      sync.Mutex
	commands []*api.ThumbnailDecodedCommand
	errors   []string

	api.Sender
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if decoded, ok := command.(*api.ThumbnailDecodedCommand); ok && topic == api.ThumbnailDecoded {
		s.commands = append(s.commands, decoded)
	}
}

func (s *StubSender) SendError(message string, err error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.errors = append(s.errors, message)
}

func (s *StubSender) Commands() []*api.ThumbnailDecodedCommand {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]*api.ThumbnailDecodedCommand{}, s.commands...)
}

type StubProgressReporter struct {
	mux     sync.Mutex
	Current int
	Total   int
	Updates int
}

func (s *StubProgressReporter) Update(name string, current int, total int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.Current = current
	s.Total = total
	s.Updates++
}

func (s *StubProgressReporter) Error(message string, err error) {
}

type LockedStubCodec struct {
	mux sync.Mutex
	*StubCodec
}

func (s *LockedStubCodec) Decode(path string, maxSize apitype.Size) (*apitype.Thumbnail, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.StubCodec.Decode(path, maxSize)
}

func TestAsyncLoader_RequestPublishesResult(t *testing.T) {
	a := assert.New(t)

	sender := &StubSender{}
	progress := &StubProgressReporter{}
	loader := NewAsyncLoader(&LockedStubCodec{StubCodec: NewStubCodec()}, thumbnailSize, sender, progress)

	generation := loader.Request("a.png")
	a.True(loader.IsPending("a.png"))
	loader.Wait()

	commands := sender.Commands()
	if a.Len(commands, 1) {
		command := commands[0]
		a.Equal("a.png", command.Path)
		a.Equal(generation, command.Generation)
		a.Nil(command.Err)
		a.True(command.Thumbnail.IsValid())

		a.True(loader.Accept(command))
		a.False(loader.IsPending("a.png"))
		a.Equal(1, progress.Current)
		a.Equal(1, progress.Total)
	}
}

func TestAsyncLoader_NewerRequestSupersedes(t *testing.T) {
	a := assert.New(t)

	sender := &StubSender{}
	loader := NewAsyncLoader(&LockedStubCodec{StubCodec: NewStubCodec()}, thumbnailSize, sender, nil)

	first := loader.Request("a.png")
	second := loader.Request("a.png")
	a.Greater(second, first)
	loader.Wait()

	commands := sender.Commands()
	a.Len(commands, 2)
	accepted := 0
	for _, command := range commands {
		if loader.Accept(command) {
			accepted++
			a.Equal(second, command.Generation)
			a.True(command.Thumbnail.IsValid())
		} else {
			a.Equal(first, command.Generation)
			a.False(command.Thumbnail.IsValid())
		}
	}
	a.Equal(1, accepted)
}

func TestAsyncLoader_Forget(t *testing.T) {
	a := assert.New(t)

	sender := &StubSender{}
	loader := NewAsyncLoader(&LockedStubCodec{StubCodec: NewStubCodec()}, thumbnailSize, sender, nil)

	loader.Request("a.png")
	loader.Forget("a.png")
	loader.Wait()

	commands := sender.Commands()
	if a.Len(commands, 1) {
		a.False(loader.Accept(commands[0]))
		a.False(commands[0].Thumbnail.IsValid())
	}
}

func TestAsyncLoader_ErrorIsPublished(t *testing.T) {
	a := assert.New(t)

	codec := NewStubCodec()
	codec.failures["missing.png"] = &apitype.NotFoundError{Path: "missing.png"}
	sender := &StubSender{}
	loader := NewAsyncLoader(&LockedStubCodec{StubCodec: codec}, thumbnailSize, sender, nil)

	loader.Request("missing.png")
	loader.Wait()

	commands := sender.Commands()
	if a.Len(commands, 1) {
		var notFound *apitype.NotFoundError
		a.True(errors.As(commands[0].Err, &notFound))
		a.Nil(commands[0].Thumbnail)
		a.True(loader.Accept(commands[0]))
	}
}
