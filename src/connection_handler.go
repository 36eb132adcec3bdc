package src

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"

	"github.com/rs/zerolog"
)

var CONNECTION_CLOSE_HEADER = Header{description: "Connection", value: "close"}
var ALLOW_HEADER = Header{description: "Allow", value: GET}

const FALLBACK_NOT_FOUND = "<!DOCTYPE html>\n<html><head><title>404 Not Found</title></head><body><h1>404 Not Found</h1></body></html>\n"

type ConnectionHandler struct {
	conn   net.Conn
	config Config
	logger zerolog.Logger

	raw      []byte
	request  *Request
	response *Response
}

type stateFunc func(*ConnectionHandler) stateFunc

func NewConnectionHandler(conn net.Conn, config Config) *ConnectionHandler {
	remote := ""
	if addr := conn.RemoteAddr(); addr != nil {
		remote = addr.String()
	}
	return &ConnectionHandler{
		conn:   conn,
		config: config,
		logger: config.Logger.With().Str("remote", remote).Logger(),
	}
}

func (handler *ConnectionHandler) Close() {
	handler.conn.Close()
}

// Handle serves exactly one request and closes the connection. A panic anywhere
// in between is answered with a 500 instead of taking the process down.
func (handler *ConnectionHandler) Handle() {
	defer handler.Close()
	defer func() {
		if r := recover(); r != nil {
			handler.logger.Warn().Interface("panic", r).Msg("recovered while handling request")
			handler.response = newResponse(SERVER_ERROR_CODE)
			respond(handler)
		}
	}()

	for state := receiveBytes; state != nil; {
		state = state(handler)
	}
}

// receiveBytes does a single bounded read. Anything past the buffer is dropped.
func receiveBytes(handler *ConnectionHandler) stateFunc {
	size := handler.config.ReadBufferSize
	if size <= 0 {
		size = DEFAULT_BUFFER_SIZE
	}

	bytes := make([]byte, size)
	length, err := handler.conn.Read(bytes)
	if length == 0 && err != nil {
		handler.logger.Debug().Err(err).Msg("connection closed before a request was read")
		return nil
	}

	handler.raw = bytes[:length]
	handler.logger.Debug().Str("data", string(handler.raw)).Msg("received data")
	return parse
}

func parse(handler *ConnectionHandler) stateFunc {
	request, err := ParseRequest(handler.raw, handler.config.StrictSyntax)
	handler.request = request

	if err != nil {
		handler.logger.Debug().Err(err).Msg("rejecting malformed request")
		handler.response = newResponse(BAD_REQUEST_CODE)
		return respond
	}

	handler.logger.Debug().Stringer("request", request).Msg("parsed request")
	return route
}

func route(handler *ConnectionHandler) stateFunc {
	switch handler.request.Method() {
	case MethodGet:
		handler.response = handleGetRequest(handler)
	default:
		handler.response = newResponse(METHOD_NOT_ALLOWED_CODE, ALLOW_HEADER)
	}
	return respond
}

func respond(handler *ConnectionHandler) stateFunc {
	payload := handler.response.serialize()

	if _, err := handler.conn.Write(payload); err != nil {
		handler.logger.Warn().Err(err).Msg("failed to write response")
	}

	event := handler.logger.Info().Int("status", handler.response.line.Code())
	if handler.request != nil {
		event = event.Str("method", handler.request.MethodName()).Str("url", handler.request.URL())
	}
	event.Msg("responded")
	handler.logger.Debug().Str("data", string(payload)).Msg("sent response")

	return nil
}

func handleGetRequest(handler *ConnectionHandler) *Response {
	url := handler.request.URL()

	content_path, err := ContentPath(url, handler.config)
	if err != nil {
		handler.logger.Debug().Err(err).Msg("outside web domain")
		return notFound(handler.config)
	}
	handler.request.resolvedPath = content_path

	info, err := os.Stat(content_path)
	if err != nil {
		handler.logger.Debug().Err(err).Str("path", content_path).Msg("cannot stat content")
		return notFound(handler.config)
	}

	if info.IsDir() {
		return newResponse(MOVED_PERMANENTLY_CODE, Header{description: "Location", value: url + "/"})
	}

	content_type, content, err := loadContent(content_path)
	if err != nil {
		handler.logger.Debug().Err(err).Str("path", content_path).Msg("cannot serve content")
		return notFound(handler.config)
	}

	return newResponse(SUCCESS_CODE).withContent(content_type, content)
}

// loadContent classifies path before touching the file, then reads it fully.
func loadContent(path string) (ContentType, string, error) {
	content_type, err := Classify(path)
	if err != nil {
		return "", "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}

	return content_type, string(content), nil
}

func notFound(config Config) *Response {
	content_type, content, err := loadContent(config.NotFoundDocument)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			config.Logger.Warn().Err(err).Str("path", config.NotFoundDocument).Msg("not found document unusable")
		}
		content_type, content = ContentHTML, FALLBACK_NOT_FOUND
	}
	return newResponse(NOT_FOUND_CODE).withContent(content_type, content)
}
