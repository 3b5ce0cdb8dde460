package qurantest

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// NewServer starts an httptest.Server that serves routes under /v1.
// Pass nil to serve DefaultRoutes. The caller must Close the server; the
// API base URL is server.URL + "/v1".
func NewServer(routes map[string][]byte) *httptest.Server {
	if routes == nil {
		routes = DefaultRoutes()
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, ok := routes[strings.TrimPrefix(r.URL.Path, "/v1/")]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":404,"status":"Not Found","data":"Not found."}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
}
