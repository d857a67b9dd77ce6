package api

type Topic string

const (
	ThumbnailDecoded     Topic = "event-thumbnail-decoded"
	ProcessStatusUpdated Topic = "event-process-status-updated"
	ShowError            Topic = "event-show-error"
	PageChanged          Topic = "event-page-changed"
)
