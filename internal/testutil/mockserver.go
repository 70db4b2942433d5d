package testutil

import (
	"net/http"
	"net/http/httptest"
)

// MockServer is an httptest.Server that records every request it serves,
// so tests can assert on call counts and query parameters.
type MockServer struct {
	*httptest.Server
	Requests []*http.Request
}

// NewMockServer starts a recording server around handler.
func NewMockServer(handler http.HandlerFunc) *MockServer {
	ms := &MockServer{
		Requests: make([]*http.Request, 0),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.Requests = append(ms.Requests, r)
		handler(w, r)
	}))

	return ms
}

// NewJSONServer starts a recording server that answers every request with
// the given JSON body.
func NewJSONServer(body string) *MockServer {
	return NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

// LastRequest returns the most recent request, or nil before the first one.
func (ms *MockServer) LastRequest() *http.Request {
	if len(ms.Requests) == 0 {
		return nil
	}
	return ms.Requests[len(ms.Requests)-1]
}

// RequestCount returns the number of requests served so far.
func (ms *MockServer) RequestCount() int {
	return len(ms.Requests)
}

// Reset clears the request history.
func (ms *MockServer) Reset() {
	ms.Requests = make([]*http.Request, 0)
}
