package src

import "errors"

var (
	ErrPathEscape             = errors.New("path escapes the document root")
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrMalformedRequest       = errors.New("malformed request")
)
