package src

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	ct, err := Classify("./www/index.html")
	if err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, "text/html", string(ct))

	ct, err = Classify("./www/deep/base.css")
	if err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, "text/css", string(ct))

	for _, p := range []string{"./www/notes.txt", "./www/index.html.bak", "./www/folder/", "./www/css"} {
		if _, err := Classify(p); !errors.Is(err, ErrUnsupportedContentType) {
			t.Errorf("Classify(%q) = %v, want ErrUnsupportedContentType", p, err)
		}
	}
}
