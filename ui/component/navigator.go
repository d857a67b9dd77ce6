package component

import (
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/common/logger"
)

type PageNavigator struct {
	current api.PageId
	pages   map[api.PageId]bool
	sender  api.Sender
}

var _ api.Navigator = (*PageNavigator)(nil)

func NewPageNavigator(sender api.Sender, pages ...api.PageId) *PageNavigator {
	known := map[api.PageId]bool{}
	for _, page := range pages {
		known[page] = true
	}
	current := api.StartPage
	if len(pages) > 0 {
		current = pages[0]
	}
	return &PageNavigator{
		current: current,
		pages:   known,
		sender:  sender,
	}
}

// Show raises page and publishes api.PageChanged. Unknown pages are ignored.
func (s *PageNavigator) Show(page api.PageId) {
	if !s.pages[page] {
		logger.Warn.Printf("Unknown page '%s'", page)
		return
	}
	if page == s.current {
		return
	}
	logger.Debug.Printf("Page changed from '%s' to '%s'", s.current, page)
	s.current = page
	s.sender.SendCommandToTopic(api.PageChanged, &api.PageChangedCommand{Page: page})
}

func (s *PageNavigator) Current() api.PageId {
	return s.current
}
