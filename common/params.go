package common

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

const (
	EnvPrefix = "IMAGE_LOCATOR_"

	defaultThumbnailSize     = 150
	defaultWindowWidth       = 700
	defaultWindowHeight      = 500
	defaultEventBusQueueSize = 100
	defaultBackground        = "assets/photo-location.webp"
)

type Params struct {
	logLevel          string
	thumbnailSize     int
	themeFile         string
	backgroundImage   string
	asyncDecode       bool
	windowWidth       int
	windowHeight      int
	eventBusQueueSize int
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:          "INFO",
		thumbnailSize:     defaultThumbnailSize,
		themeFile:         "",
		backgroundImage:   defaultBackground,
		asyncDecode:       false,
		windowWidth:       defaultWindowWidth,
		windowHeight:      defaultWindowHeight,
		eventBusQueueSize: defaultEventBusQueueSize,
	}
}

// LoadEnvFiles reads .env style files into the process environment.
// Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		logger.Debug.Printf("Loaded environment from '%s'", file)
	}
	return nil
}

// ParamsFromEnv returns defaults overridden by IMAGE_LOCATOR_* variables.
func ParamsFromEnv() *Params {
	params := NewEmptyParams()
	params.logLevel = envString("LOG_LEVEL", params.logLevel)
	params.thumbnailSize = envInt("THUMBNAIL_SIZE", params.thumbnailSize)
	params.themeFile = envString("THEME", params.themeFile)
	params.backgroundImage = envString("BACKGROUND", params.backgroundImage)
	params.asyncDecode = envBool("ASYNC", params.asyncDecode)
	params.windowWidth = envInt("WIDTH", params.windowWidth)
	params.windowHeight = envInt("HEIGHT", params.windowHeight)
	params.eventBusQueueSize = envInt("EVENT_QUEUE_SIZE", params.eventBusQueueSize)
	return params
}

// BindFlags registers the command line flags. Current values act as the
// flag defaults so that flags override the environment.
func (s *Params) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&s.logLevel, "logLevel", s.logLevel, "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	flags.IntVar(&s.thumbnailSize, "thumbnailSize", s.thumbnailSize, "Longest side of the thumbnails in pixels")
	flags.StringVar(&s.themeFile, "theme", s.themeFile, "YAML file overriding theme colors and fonts")
	flags.StringVar(&s.backgroundImage, "background", s.backgroundImage, "Start page background image")
	flags.BoolVar(&s.asyncDecode, "async", s.asyncDecode, "Decode thumbnails in the background")
	flags.IntVar(&s.windowWidth, "width", s.windowWidth, "Initial window width")
	flags.IntVar(&s.windowHeight, "height", s.windowHeight, "Initial window height")
}

func (s *Params) Validate() error {
	if s.thumbnailSize <= 0 {
		return errors.New("thumbnail size must be positive")
	}
	if s.windowWidth <= 0 || s.windowHeight <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) ThumbnailSize() apitype.Size {
	return apitype.SizeOf(s.thumbnailSize, s.thumbnailSize)
}

func (s *Params) ThemeFile() string {
	return s.themeFile
}

func (s *Params) BackgroundImage() string {
	return s.backgroundImage
}

func (s *Params) AsyncDecode() bool {
	return s.asyncDecode
}

func (s *Params) WindowSize() apitype.Size {
	return apitype.SizeOf(s.windowWidth, s.windowHeight)
}

func (s *Params) EventBusQueueSize() int {
	return s.eventBusQueueSize
}

func envString(name string, defaultValue string) string {
	if value, ok := os.LookupEnv(EnvPrefix + name); ok && value != "" {
		return value
	}
	return defaultValue
}

func envInt(name string, defaultValue int) int {
	value := envString(name, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logger.Warn.Printf("Invalid value '%s' for %s%s, using %d", value, EnvPrefix, name, defaultValue)
		return defaultValue
	}
	return parsed
}

func envBool(name string, defaultValue bool) bool {
	value := envString(name, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		logger.Warn.Printf("Invalid value '%s' for %s%s, using %t", value, EnvPrefix, name, defaultValue)
		return defaultValue
	}
	return parsed
}
