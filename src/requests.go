package src

import (
	"fmt"
	"strings"
)

const CRLF = "\r\n"

type Header struct {
	description string
	value       string
}

func (header Header) serialize() string {
	return strings.Join([]string{header.description, header.value}, ": ")
}

// Headers is the parsed request header set. The first occurrence of a name wins.
type Headers map[string]string

// Get looks name up ignoring case.
func (h Headers) Get(name string) string {
	if v, ok := h[name]; ok {
		return v
	}
	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

type Request struct {
	line         RequestLine
	headers      Headers
	resolvedPath string
}

func (r *Request) Method() Method     { return r.line.method }
func (r *Request) MethodName() string { return r.line.name }
func (r *Request) URL() string        { return r.line.URI }
func (r *Request) Headers() Headers   { return r.headers }

// ResolvedPath is empty until the handler has routed a GET request.
func (r *Request) ResolvedPath() string { return r.resolvedPath }

func (r *Request) String() string {
	return fmt.Sprintf("%s %s -> %q %v", r.line.name, r.line.URI, r.resolvedPath, r.headers)
}

// ParseRequest reads the request line and headers from raw. Parsing stops at the
// first blank line or at the end of the buffer; the body is never looked at.
func ParseRequest(raw []byte, strict bool) (*Request, error) {
	as_split_string := strings.Split(string(raw), CRLF)

	request_line, err := parseRequestLine(as_split_string[0], strict)
	request := &Request{line: request_line, headers: Headers{}}
	if err != nil {
		return request, err
	}

	for _, line := range as_split_string[1:] {
		if line == "" {
			break
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			if strict {
				return request, fmt.Errorf("header line %q has no colon: %w", line, ErrMalformedRequest)
			}
			continue
		}

		if _, seen := request.headers[name]; !seen {
			request.headers[name] = strings.TrimSpace(value)
		}
	}

	return request, nil
}

type Response struct {
	line    ResponseLine
	headers []Header
	content string
}

func newResponse(status_code int, headers ...Header) *Response {
	return &Response{
		line:    statusLine(status_code),
		headers: append([]Header{CONNECTION_CLOSE_HEADER}, headers...),
	}
}

// withContent sets the body together with its type and byte length.
func (response *Response) withContent(contentType ContentType, content string) *Response {
	response.headers = append(response.headers,
		Header{description: "Content-Type", value: string(contentType)},
		Header{description: "Content-Length", value: fmt.Sprint(len(content))},
	)
	response.content = content
	return response
}

// Header returns the first value for name, or "".
func (response *Response) Header(name string) string {
	for _, h := range response.headers {
		if strings.EqualFold(h.description, name) {
			return h.value
		}
	}
	return ""
}

// serialize writes the status line and headers in order, always closes the header
// block with an empty line, and appends the body whenever it is non-empty.
func (response *Response) serialize() []byte {
	var sb strings.Builder
	sb.WriteString(response.line.serialize())
	sb.WriteString(CRLF)
	for _, header := range response.headers {
		sb.WriteString(header.serialize())
		sb.WriteString(CRLF)
	}
	sb.WriteString(CRLF)
	sb.WriteString(response.content)
	return []byte(sb.String())
}

// Serialize frames a status, ordered headers and body into wire bytes.
func Serialize(status_code int, headers []Header, body string) []byte {
	response := &Response{line: statusLine(status_code), headers: headers, content: body}
	return response.serialize()
}

func NewHeader(name, value string) Header {
	return Header{description: name, value: value}
}
