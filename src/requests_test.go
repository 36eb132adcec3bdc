package src

import (
	"errors"
	"testing"
)

func ExpectEqual(t *testing.T, expect, actual string) {
	t.Helper()
	if expect != actual {
		t.Errorf("Got %q, want %q", actual, expect)
	}
}

func TestParseRequest(t *testing.T) {
	raw := "GET /folder/ HTTP/1.1\r\nHost: localhost:8080\r\nAccept:  text/html \r\nhost: ignored\r\n\r\nX-Body: not a header"
	req, err := ParseRequest([]byte(raw), true)
	if err != nil {
		t.Fatalf("error: %v", err)
	}

	if req.Method() != MethodGet {
		t.Errorf("Got method %v, want GET", req.Method())
	}
	ExpectEqual(t, "GET", req.MethodName())
	ExpectEqual(t, "/folder/", req.URL())
	ExpectEqual(t, "localhost:8080", req.Headers()["Host"])
	ExpectEqual(t, "text/html", req.Headers().Get("accept"))
	ExpectEqual(t, "ignored", req.Headers()["host"])
	ExpectEqual(t, "", req.Headers().Get("X-Body"))
	ExpectEqual(t, "", req.ResolvedPath())
}

func TestParseRequestFirstOccurrenceWins(t *testing.T) {
	req, err := ParseRequest([]byte("GET / HTTP/1.1\r\nAccept: a\r\nAccept: b\r\n"), false)
	if err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, "a", req.Headers().Get("Accept"))
}

func TestParseRequestWithoutBlankLine(t *testing.T) {
	req, err := ParseRequest([]byte("GET /base.css HTTP/1.1\r\nHost: h"), false)
	if err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, "/base.css", req.URL())
	ExpectEqual(t, "h", req.Headers().Get("Host"))
}

func TestParseRequestOtherMethods(t *testing.T) {
	for _, m := range []string{"POST", "PUT", "DELETE", "HEAD", "get"} {
		req, err := ParseRequest([]byte(m+" / HTTP/1.1\r\n\r\n"), true)
		if err != nil {
			t.Fatal(err)
		}
		if req.Method() != MethodOther {
			t.Errorf("%s parsed as %v, want OTHER", m, req.Method())
		}
		ExpectEqual(t, m, req.MethodName())
	}
}

func TestParseRequestLenient(t *testing.T) {
	req, err := ParseRequest([]byte("GET"), false)
	if err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	ExpectEqual(t, "GET", req.MethodName())
	ExpectEqual(t, "", req.URL())

	req, err = ParseRequest([]byte("GET / HTTP/1.1\r\nno colon here\r\nHost: h\r\n\r\n"), false)
	if err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	ExpectEqual(t, "h", req.Headers().Get("Host"))
}

func TestParseRequestStrict(t *testing.T) {
	bad := []string{
		"",
		"GET",
		"GET /",
		"GET index.html HTTP/1.1\r\n\r\n",
		"GET / SPDY/3\r\n\r\n",
		"GET / HTTP/1.1\r\nno colon here\r\n\r\n",
	}
	for _, raw := range bad {
		if _, err := ParseRequest([]byte(raw), true); !errors.Is(err, ErrMalformedRequest) {
			t.Errorf("ParseRequest(%q) = %v, want ErrMalformedRequest", raw, err)
		}
	}
}

func TestSerialize(t *testing.T) {
	headers := []Header{
		NewHeader("Connection", "close"),
		NewHeader("Content-Type", "text/css"),
		NewHeader("Content-Length", "9"),
	}
	expect := "HTTP/1.1 200 OK\r\nConnection: close\r\nContent-Type: text/css\r\nContent-Length: 9\r\n\r\nbody {}\r\n"
	ExpectEqual(t, expect, string(Serialize(SUCCESS_CODE, headers, "body {}\r\n")))
}

func TestSerializeWithoutBody(t *testing.T) {
	headers := []Header{NewHeader("Connection", "close"), NewHeader("Allow", "GET")}
	expect := "HTTP/1.1 405 Method Not Allowed\r\nConnection: close\r\nAllow: GET\r\n\r\n"
	ExpectEqual(t, expect, string(Serialize(METHOD_NOT_ALLOWED_CODE, headers, "")))
}

func TestSerializeWhitespaceBody(t *testing.T) {
	response := newResponse(SUCCESS_CODE).withContent(ContentHTML, "  \n")
	expect := "HTTP/1.1 200 OK\r\nConnection: close\r\nContent-Type: text/html\r\nContent-Length: 3\r\n\r\n  \n"
	ExpectEqual(t, expect, string(response.serialize()))
}

func TestContentLengthCountsBytes(t *testing.T) {
	response := newResponse(SUCCESS_CODE).withContent(ContentHTML, "héllo ✓")
	ExpectEqual(t, "10", response.Header("Content-Length"))
	ExpectEqual(t, "close", response.Header("connection"))
}
