package api

import "vincit.fi/image-location-extractor/api/apitype"

type PageId string

const (
	StartPage     PageId = "main"
	UploadingPage PageId = "uploading"
)

type ErrorCommand struct {
	Message string
}

type UpdateProgressCommand struct {
	Name      string
	Current   int
	Total     int
	CanCancel bool
	Modal     bool
}

type ThumbnailDecodedCommand struct {
	Path       string
	Generation uint64
	Thumbnail  *apitype.Thumbnail
	Err        error
}

type PageChangedCommand struct {
	Page PageId
}

type Navigator interface {
	Show(page PageId)
	Current() PageId
}

type Gui interface {
	ShowError(*ErrorCommand)
	UpdateProgress(*UpdateProgressCommand)
	Run()
}
