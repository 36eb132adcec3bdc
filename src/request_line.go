package src

import (
	"fmt"
	"strings"
)

// Method is the closed set of request methods the server tells apart.
// Anything that is not GET falls into MethodOther.
type Method int

const (
	MethodOther Method = iota
	MethodGet
)

const GET = "GET"

func methodOf(name string) Method {
	if name == GET {
		return MethodGet
	}
	return MethodOther
}

func (m Method) String() string {
	if m == MethodGet {
		return GET
	}
	return "OTHER"
}

type RequestLine struct {
	method  Method
	name    string
	URI     string
	version string
}

func httpVersionSupported(version string) bool {
	return strings.HasPrefix(version, "HTTP/1.")
}

// parseRequestLine splits on the first two spaces only. In lenient mode missing
// fields are left empty; strict mode reports them as ErrMalformedRequest.
func parseRequestLine(line string, strict bool) (RequestLine, error) {
	name, rest, _ := strings.Cut(line, " ")
	URI, version, _ := strings.Cut(rest, " ")

	request_line := RequestLine{
		method:  methodOf(name),
		name:    name,
		URI:     URI,
		version: version,
	}

	if !strict {
		return request_line, nil
	}

	if name == "" || URI == "" || version == "" {
		return request_line, fmt.Errorf("request line invalid: %q, not enough arguments: %w", line, ErrMalformedRequest)
	}

	if !strings.HasPrefix(URI, "/") {
		return request_line, fmt.Errorf("request URI %q does not begin with \"/\": %w", URI, ErrMalformedRequest)
	}

	if !httpVersionSupported(version) {
		return request_line, fmt.Errorf("version %q not supported: %w", version, ErrMalformedRequest)
	}

	return request_line, nil
}
