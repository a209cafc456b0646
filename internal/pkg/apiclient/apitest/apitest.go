// Package apitest runs a fake backend for handler and service tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
)

// Request is a recorded call.
type Request struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

// Server is an httptest backend routing on "METHOD /path".
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

// New starts a Server closed at test cleanup.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Client returns an apiclient pointed at the server.
func (s *Server) Client() *apiclient.Client { return apiclient.New(s.URL) }

// Handle registers h for method and path.
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = h
}

// Reply registers a fixed wrapped success response.
func (s *Server) Reply(method, path string, status int, data any) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		Envelope(w, status, data)
	})
}

// Fail registers a fixed error response carrying message.
func (s *Server) Fail(method, path string, status int, message string) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, status, map[string]any{"success": false, "message": message})
	})
}

// Requests returns a copy of every recorded call.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many calls hit method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	h, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		JSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "route not found"})
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	h(w, r)
}

// Envelope writes data wrapped as {success, data}.
func Envelope(w http.ResponseWriter, status int, data any) {
	JSON(w, status, map[string]any{"success": status < 400, "data": data})
}

// JSON writes v as the response body.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
