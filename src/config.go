package src

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	DEFAULT_HOST        = "localhost"
	DEFAULT_PORT        = 8080
	DEFAULT_ROOT        = "./www"
	DEFAULT_NOT_FOUND   = "./404.html"
	DEFAULT_BUFFER_SIZE = 1024
)

// Config is fixed at process start and shared read-only by every connection.
type Config struct {
	Host             string
	Port             int
	Root             string
	NotFoundDocument string
	ReadBufferSize   int
	Policy           Policy
	StrictSyntax     bool
	Debug            bool
	Logger           zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Host:             DEFAULT_HOST,
		Port:             DEFAULT_PORT,
		Root:             DEFAULT_ROOT,
		NotFoundDocument: DEFAULT_NOT_FOUND,
		ReadBufferSize:   DEFAULT_BUFFER_SIZE,
		Policy:           PolicyClamp,
		Logger:           zerolog.Nop(),
	}
}

func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
