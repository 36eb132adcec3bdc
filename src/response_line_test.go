package src

import "testing"

func TestCreateResponseLine(t *testing.T) {
	cases := []struct {
		code   int
		expect string
	}{
		{SUCCESS_CODE, "HTTP/1.1 200 OK"},
		{MOVED_PERMANENTLY_CODE, "HTTP/1.1 301 Moved Permanently"},
		{BAD_REQUEST_CODE, "HTTP/1.1 400 Bad Request"},
		{NOT_FOUND_CODE, "HTTP/1.1 404 Not Found"},
		{METHOD_NOT_ALLOWED_CODE, "HTTP/1.1 405 Method Not Allowed"},
		{SERVER_ERROR_CODE, "HTTP/1.1 500 Internal Server Error"},
	}

	for _, c := range cases {
		rl, err := createResponseLine(HTTP_VERSION, c.code, reasonPhrases[c.code])
		if err != nil {
			t.Fatal(err)
		}
		ExpectEqual(t, c.expect, rl.serialize())
	}
}

func TestCreateResponseLineRejects(t *testing.T) {
	if _, err := createResponseLine(HTTP_VERSION, 418, "I'm a teapot"); err == nil {
		t.Error("expected unsupported status code to fail")
	}
	if _, err := createResponseLine(HTTP_VERSION, SUCCESS_CODE, NOT_FOUND); err == nil {
		t.Error("expected mismatched reason phrase to fail")
	}
	if _, err := createResponseLine("HTTP/1.0", SUCCESS_CODE, OK); err == nil {
		t.Error("expected unsupported version to fail")
	}
}
