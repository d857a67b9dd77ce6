package registry

import (
	"sync"

	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

const loadingProgressName = "Loading thumbnails"

// AsyncLoader decodes thumbnails on background goroutines and publishes the
// results to api.ThumbnailDecoded. It never touches the registry; the UI
// thread calls Accept for each result and inserts the accepted ones.
//
// Every request gets a generation number. Only the newest request for a path
// is accepted, older in-flight results are released and dropped.
type AsyncLoader struct {
	codec         api.ThumbnailCodec
	thumbnailSize apitype.Size
	sender        api.Sender
	progress      api.ProgressReporter

	mux            sync.Mutex
	latest         map[string]uint64
	nextGeneration uint64
	requested      int
	completed      int
	wg             sync.WaitGroup
}

func NewAsyncLoader(codec api.ThumbnailCodec, thumbnailSize apitype.Size, sender api.Sender, progress api.ProgressReporter) *AsyncLoader {
	return &AsyncLoader{
		codec:         codec,
		thumbnailSize: thumbnailSize,
		sender:        sender,
		progress:      progress,
		latest:        map[string]uint64{},
	}
}

// Request starts decoding path and returns the generation of the request.
func (s *AsyncLoader) Request(path string) uint64 {
	s.mux.Lock()
	s.nextGeneration++
	generation := s.nextGeneration
	if _, inFlight := s.latest[path]; inFlight {
		logger.Debug.Printf("Request %d supersedes earlier request for '%s'", generation, path)
	}
	s.latest[path] = generation
	s.requested++
	current, total := s.completed, s.requested
	s.mux.Unlock()

	s.reportProgress(current, total)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		thumbnail, err := s.codec.Decode(path, s.thumbnailSize)
		s.sender.SendCommandToTopic(api.ThumbnailDecoded, &api.ThumbnailDecodedCommand{
			Path:       path,
			Generation: generation,
			Thumbnail:  thumbnail,
			Err:        err,
		})
	}()
	return generation
}

// Accept reports whether the result is the newest one for its path.
// Superseded results have their thumbnail released.
func (s *AsyncLoader) Accept(command *api.ThumbnailDecodedCommand) bool {
	s.mux.Lock()
	latest, found := s.latest[command.Path]
	accepted := found && latest == command.Generation
	if accepted {
		delete(s.latest, command.Path)
	}
	s.completed++
	current, total := s.completed, s.requested
	if s.completed >= s.requested {
		s.completed = 0
		s.requested = 0
	}
	s.mux.Unlock()

	if !accepted {
		logger.Debug.Printf("Dropping superseded result %d for '%s'", command.Generation, command.Path)
		command.Thumbnail.Release()
	}
	s.reportProgress(current, total)
	return accepted
}

// Forget drops any in-flight request for path.
func (s *AsyncLoader) Forget(path string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.latest, path)
}

func (s *AsyncLoader) IsPending(path string) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	_, found := s.latest[path]
	return found
}

// Wait blocks until every started decode has published its result.
func (s *AsyncLoader) Wait() {
	s.wg.Wait()
}

func (s *AsyncLoader) reportProgress(current int, total int) {
	if s.progress != nil {
		s.progress.Update(loadingProgressName, current, total)
	}
}
