package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeTokenServer stands in for the Yahoo OAuth token endpoint. It counts
// the refresh calls it serves so tests can assert on how often a cached
// token is actually refreshed.
type FakeTokenServer struct {
	s *httptest.Server

	mu        sync.Mutex
	refreshes int
	expiresIn int
}

func NewFakeTokenServer(expiresIn int) *FakeTokenServer {
	f := &FakeTokenServer{expiresIn: expiresIn}
	f.s = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		f.mu.Lock()
		f.refreshes++
		n := f.refreshes
		expiresIn := f.expiresIn
		f.mu.Unlock()

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{
			"access_token": "access_token_%d",
			"refresh_token": "refresh_token",
			"token_type": "bearer",
			"expires_in": %d
		}`, n, expiresIn)
	}))
	return f
}

func (f *FakeTokenServer) RefreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

func (f *FakeTokenServer) Close() {
	f.s.Close()
}

func (f *FakeTokenServer) URL() string {
	return f.s.URL
}
