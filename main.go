package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/backend/background"
	"vincit.fi/image-location-extractor/backend/registry"
	"vincit.fi/image-location-extractor/backend/thumbnail"
	"vincit.fi/image-location-extractor/common"
	"vincit.fi/image-location-extractor/common/event"
	"vincit.fi/image-location-extractor/common/logger"
	"vincit.fi/image-location-extractor/common/uithread"
	"vincit.fi/image-location-extractor/ui/component"
	"vincit.fi/image-location-extractor/ui/giu"
	"vincit.fi/image-location-extractor/ui/theme"
)

var (
	params     *common.Params
	envFileErr error
	rootCmd    = &cobra.Command{
		Use:          "image-location-extractor",
		Short:        "Upload images and manage the list of images to extract locations from",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			logger.Initialize(logger.StringToLogLevel(params.LogLevel()))
			if envFileErr != nil {
				logger.Warn.Printf("Could not read .env file: %s", envFileErr)
			}
			run(params)
			return nil
		},
	}
)

func init() {
	envFileErr = common.LoadEnvFiles(".env")
	params = common.ParamsFromEnv()
	params.BindFlags(rootCmd.Flags())
}

func loadTheme(path string) theme.Theme {
	if path == "" {
		return theme.Default()
	}
	t, err := theme.LoadFile(path)
	if err != nil {
		logger.Error.Printf("Using default theme: %s", err)
		return theme.Default()
	}
	logger.Info.Printf("Loaded theme '%s'", path)
	return t
}

func run(params *common.Params) {
	queue := uithread.NewQueue()
	broker := event.InitBus(params.EventBusQueueSize(), queue)
	defer broker.Close()

	codec := thumbnail.NewCodec()
	imageRegistry := registry.NewRegistry(codec, params.ThumbnailSize())
	defer imageRegistry.Close()

	scaler, err := background.NewScaler(params.BackgroundImage())
	if err != nil {
		logger.Error.Printf("Error loading image: %s", err)
	}

	textures := giu.NewTextureRenderer(queue)
	list := component.NewImageList(imageRegistry, textures)
	controller := component.NewUploadController(giu.NewDialogFilePicker(), imageRegistry, list, broker)
	if params.AsyncDecode() {
		progress := api.NewSenderProgressReporter(broker)
		controller.WithLoader(registry.NewAsyncLoader(codec, params.ThumbnailSize(), broker, progress))
	}
	navigator := component.NewPageNavigator(broker, api.StartPage, api.UploadingPage)

	gui := giu.NewUi(params, loadTheme(params.ThemeFile()).Styles(), broker, queue,
		navigator, list, controller, textures, scaler)

	broker.ConnectToGui(api.ThumbnailDecoded, controller.OnThumbnailDecoded)
	broker.ConnectToGui(api.ProcessStatusUpdated, gui.UpdateProgress)
	broker.ConnectToGui(api.PageChanged, gui.PageChanged)
	broker.ConnectToGui(api.ShowError, gui.ShowError)

	gui.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
