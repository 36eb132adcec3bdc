package src

import (
	"fmt"
	"strings"
)

type ContentType string

const (
	ContentHTML ContentType = "text/html"
	ContentCSS  ContentType = "text/css"
)

var contentTypes = []struct {
	suffix      string
	contentType ContentType
}{
	{".html", ContentHTML},
	{".css", ContentCSS},
}

// Classify maps the file suffix of path to the content type served for it.
func Classify(path string) (ContentType, error) {
	for _, ct := range contentTypes {
		if strings.HasSuffix(path, ct.suffix) {
			return ct.contentType, nil
		}
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedContentType)
}
