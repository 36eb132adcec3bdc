package src

import (
	"fmt"
)

const HTTP_VERSION = "HTTP/1.1"

const (
	OK                    = "OK"
	MOVED_PERMANENTLY     = "Moved Permanently"
	BAD_REQUEST           = "Bad Request"
	NOT_FOUND             = "Not Found"
	METHOD_NOT_ALLOWED    = "Method Not Allowed"
	INTERNAL_SERVER_ERROR = "Internal Server Error"
)

const (
	SUCCESS_CODE            = 200
	MOVED_PERMANENTLY_CODE  = 301
	BAD_REQUEST_CODE        = 400
	NOT_FOUND_CODE          = 404
	METHOD_NOT_ALLOWED_CODE = 405
	SERVER_ERROR_CODE       = 500
)

var reasonPhrases = map[int]string{
	SUCCESS_CODE:            OK,
	MOVED_PERMANENTLY_CODE:  MOVED_PERMANENTLY,
	BAD_REQUEST_CODE:        BAD_REQUEST,
	NOT_FOUND_CODE:          NOT_FOUND,
	METHOD_NOT_ALLOWED_CODE: METHOD_NOT_ALLOWED,
	SERVER_ERROR_CODE:       INTERNAL_SERVER_ERROR,
}

type ResponseLine struct {
	version     string
	status_code int
	message     string
}

func createResponseLine(version string, status_code int, message string) (ResponseLine, error) {
	phrase, known := reasonPhrases[status_code]
	if !known {
		return ResponseLine{}, fmt.Errorf("Cannot create response line with status code %d", status_code)
	}

	if message != phrase {
		return ResponseLine{}, fmt.Errorf("Cannot create response line with message %s for status code %d", message, status_code)
	}

	if version != HTTP_VERSION {
		return ResponseLine{}, fmt.Errorf("Cannot create response line with version %s", version)
	}

	return ResponseLine{
		version:     version,
		status_code: status_code,
		message:     message,
	}, nil
}

// statusLine builds the line for one of the supported codes. Callers only pass
// codes from reasonPhrases, so a failure here is a programming error.
func statusLine(status_code int) ResponseLine {
	rl, err := createResponseLine(HTTP_VERSION, status_code, reasonPhrases[status_code])
	if err != nil {
		panic(err)
	}
	return rl
}

func (rl ResponseLine) Code() int {
	return rl.status_code
}

func (rl ResponseLine) serialize() string {
	return fmt.Sprintf("%s %d %s", rl.version, rl.status_code, rl.message)
}
