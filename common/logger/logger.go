package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	currentLevel = INFO
	base         = zerolog.Nop()

	Error = &Logger{level: ERROR}
	Warn  = &Logger{level: WARN}
	Info  = &Logger{level: INFO}
	Debug = &Logger{level: DEBUG}
	Trace = &Logger{level: TRACE}
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	Warn.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func (s LogLevel) zerologLevel() zerolog.Level {
	switch s {
	case ERROR:
		return zerolog.ErrorLevel
	case WARN:
		return zerolog.WarnLevel
	case INFO:
		return zerolog.InfoLevel
	case DEBUG:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Logger writes messages of a single level. The package level loggers
// share one zerolog backend which is swapped by Initialize.
type Logger struct {
	level LogLevel
}

func (s *Logger) enabled() bool {
	return s.level <= currentLevel
}

func (s *Logger) Printf(format string, v ...interface{}) {
	if s.enabled() {
		base.WithLevel(s.level.zerologLevel()).Msg(fmt.Sprintf(format, v...))
	}
}

func (s *Logger) Print(v ...interface{}) {
	if s.enabled() {
		base.WithLevel(s.level.zerologLevel()).Msg(fmt.Sprint(v...))
	}
}

func (s *Logger) Println(v ...interface{}) {
	if s.enabled() {
		base.WithLevel(s.level.zerologLevel()).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
	}
}

func (s *Logger) Panic(v ...interface{}) {
	message := fmt.Sprint(v...)
	base.WithLevel(s.level.zerologLevel()).Msg(message)
	panic(message)
}

func (s *Logger) Fatal(v ...interface{}) {
	base.WithLevel(s.level.zerologLevel()).Msg(fmt.Sprint(v...))
	os.Exit(1)
}

func IsLogLevel(logLevel LogLevel) bool {
	return logLevel <= currentLevel
}

func Initialize(logLevel LogLevel) {
	InitializeWithWriter(logLevel, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006/01/02 15:04:05"})
	Info.Printf("Initialize loggers: '%s'", logLevel.String())
}

func InitializeWithWriter(logLevel LogLevel, writer io.Writer) {
	currentLevel = logLevel
	base = zerolog.New(writer).
		Level(logLevel.zerologLevel()).
		With().
		Timestamp().
		Logger()
}
