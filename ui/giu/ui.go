package giu

import (
	"fmt"
	"time"

	g "github.com/AllenDang/giu"
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/backend/background"
	"vincit.fi/image-location-extractor/backend/thumbnail"
	"vincit.fi/image-location-extractor/common"
	"vincit.fi/image-location-extractor/common/logger"
	"vincit.fi/image-location-extractor/common/uithread"
	"vincit.fi/image-location-extractor/ui/component"
	"vincit.fi/image-location-extractor/ui/giu/widget"
	"vincit.fi/image-location-extractor/ui/theme"
)

const (
	windowTitle      = "Image Location Extractor"
	pageButtonWidth  = 160
	pageButtonHeight = 36
)

type Ui struct {
	win                 *g.MasterWindow
	oldWidth, oldHeight int
	styles              theme.Styles
	thumbnailSize       apitype.Size
	sender              api.Sender
	queue               *uithread.Queue
	navigator           api.Navigator
	list                *component.ImageList
	controller          *component.UploadController
	textures            *TextureRenderer
	background          *background.Scaler
	backgroundTexture   *g.Texture
	progress            *api.UpdateProgressCommand

	api.Gui
}

func NewUi(params *common.Params, styles theme.Styles, sender api.Sender, queue *uithread.Queue,
	navigator api.Navigator, list *component.ImageList, controller *component.UploadController,
	textures *TextureRenderer, scaler *background.Scaler) *Ui {
	windowSize := params.WindowSize()
	gui := &Ui{
		win:           g.NewMasterWindow(windowTitle, windowSize.Width(), windowSize.Height(), 0),
		styles:        styles,
		thumbnailSize: params.ThumbnailSize(),
		sender:        sender,
		queue:         queue,
		navigator:     navigator,
		list:          list,
		controller:    controller,
		textures:      textures,
		background:    scaler,
	}
	gui.win.SetBgColor(styles.Page.Background)
	return gui
}

func (s *Ui) Run() {
	s.queue.SetWakeUp(g.Update)
	s.win.Run(func() {
		s.queue.Drain()

		renderStart := time.Now()
		var page g.Widget
		switch s.navigator.Current() {
		case api.UploadingPage:
			page = s.uploadingPage()
		default:
			page = s.startPage()
		}

		g.SingleWindow().Layout(
			page,
			g.PrepareMsgbox(),
		)

		renderTime := time.Since(renderStart)
		if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Rendered UI in %s", renderTime)
		} else if renderTime >= 10*time.Millisecond {
			logger.Debug.Printf("Rendered UI in %s", renderTime)
		}
	})
}

func (s *Ui) startPage() g.Widget {
	s.updateBackground()

	button := widget.Button(s.styles.PrimaryButton,
		g.Button("Make extractions").
			Size(pageButtonWidth, pageButtonHeight).
			OnClick(func() {
				s.navigator.Show(api.UploadingPage)
			}))
	return widget.Background(s.backgroundTexture, button, pageButtonWidth, pageButtonHeight)
}

func (s *Ui) updateBackground() {
	if !s.background.HasImage() {
		return
	}
	newWidth, newHeight := s.win.GetSize()
	if newWidth == s.oldWidth && newHeight == s.oldHeight && s.backgroundTexture != nil {
		return
	}
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Window size changed from (%d x %d) to (%d x %d)",
			s.oldWidth, s.oldHeight, newWidth, newHeight)
	}
	s.oldWidth = newWidth
	s.oldHeight = newHeight

	scaled, changed := s.background.ScaledTo(apitype.SizeOf(newWidth, newHeight))
	if !changed {
		return
	}
	g.NewTextureFromRgba(thumbnail.ToRGBA(scaled), func(texture *g.Texture) {
		s.queue.Post(func() {
			s.backgroundTexture = texture
		})
	})
}

func (s *Ui) uploadingPage() g.Widget {
	rows := s.list.Rows()
	rowWidgets := make([]g.Widget, 0, len(rows))
	for _, row := range rows {
		rowWidgets = append(rowWidgets, widget.ImageRow(
			row, s.textures.Texture(row.Id()), s.styles.Row, s.thumbnailSize, s.deleteRow))
	}

	spacing := float32(s.styles.Page.Padding)
	return g.Column(
		widget.Label(s.styles.Title, "Upload Image"),
		g.Dummy(0, spacing),
		widget.Button(s.styles.PrimaryButton,
			g.Button("Select Image").
				Size(pageButtonWidth, pageButtonHeight).
				OnClick(s.controller.UploadImage)),
		s.progressBar(),
		g.Separator(),
		g.Style().
			SetColor(g.StyleColorChildBg, s.styles.Page.Background).
			To(
				g.Child().
					Border(false).
					Size(-1, -(pageButtonHeight+spacing*2)).
					Layout(rowWidgets...),
			),
		widget.Button(s.styles.PrimaryButton,
			g.Button("Back to Home").
				Size(pageButtonWidth, pageButtonHeight).
				OnClick(func() {
					s.navigator.Show(api.StartPage)
				})),
	)
}

func (s *Ui) deleteRow(command component.DeleteCommand) {
	s.queue.Post(func() {
		s.list.Delete(command)
	})
}

func (s *Ui) progressBar() g.Widget {
	if s.progress == nil || s.progress.Total == 0 || s.progress.Current >= s.progress.Total {
		return g.Dummy(0, 0)
	}
	fraction := float32(s.progress.Current) / float32(s.progress.Total)
	return g.ProgressBar(fraction).
		Size(-1, 0).
		Overlay(fmt.Sprintf("%s %d/%d", s.progress.Name, s.progress.Current, s.progress.Total))
}

func (s *Ui) UpdateProgress(command *api.UpdateProgressCommand) {
	s.progress = command
}

func (s *Ui) PageChanged(command *api.PageChangedCommand) {
	logger.Debug.Printf("Showing page '%s'", command.Page)
	g.Update()
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	g.Msgbox("Error", command.Message)
}
