package qurantest

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Transport is an http.RoundTripper that answers from memory.
//
// A request is matched against Routes by the longest key its path ends
// with; unmatched requests get Body, or a 404 when Body is nil. Err, when
// set, is returned for every request instead of a response.
type Transport struct {
	StatusCode int // status of every response, 200 when zero
	Body       []byte
	Routes     map[string][]byte
	Err        error

	mu       sync.Mutex
	requests []string
}

// NewTransport returns a Transport answering every request with status and body
func NewTransport(status int, body []byte) *Transport {
	return &Transport{StatusCode: status, Body: body}
}

// NewFixtureTransport returns a Transport serving DefaultRoutes
func NewFixtureTransport() *Transport {
	return &Transport{Routes: DefaultRoutes()}
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req.URL.RequestURI())
	t.mu.Unlock()

	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if t.Err != nil {
		return nil, t.Err
	}

	status := t.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	body, ok := t.match(req.URL.Path)
	if !ok {
		if t.Body == nil {
			status = http.StatusNotFound
			body = []byte(`{"code":404,"status":"Not Found","data":"Not found."}`)
		} else {
			body = t.Body
		}
	}

	return &http.Response{
		StatusCode:    status,
		Status:        http.StatusText(status),
		Header:        http.Header{"Content-Type": {"application/json"}},
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

func (t *Transport) match(path string) ([]byte, bool) {
	var best string
	for key := range t.Routes {
		if strings.HasSuffix(path, "/"+key) && len(key) > len(best) {
			best = key
		}
	}
	if best == "" {
		return nil, false
	}
	return t.Routes[best], true
}

// Requests returns the request URIs seen so far, in order
func (t *Transport) Requests() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.requests))
	copy(out, t.requests)
	return out
}

// Client returns an *http.Client using t
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}
