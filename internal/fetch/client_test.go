package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"topchart/internal/fetch"
)

func newTestClient() *fetch.Client {
	return fetch.NewClient(fetch.Options{
		UserAgent:      "topchart-test/1.0",
		AcceptLanguage: "en-US,en;q=0.5",
		Timeout:        5 * time.Second,
		RetryWait:      time.Millisecond,
	})
}

func TestFetchSendsBrowserHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "topchart-test/1.0" {
			t.Errorf("unexpected user agent %q", got)
		}
		if got := r.Header.Get("Accept-Language"); got != "en-US,en;q=0.5" {
			t.Errorf("unexpected accept-language %q", got)
		}
		if r.Header.Get("Accept") == "" {
			t.Error("expected accept header")
		}
		_, _ = w.Write([]byte("<html><body>chart</body></html>"))
	}))
	defer server.Close()

	body, err := newTestClient().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if body != "<html><body>chart</body></html>" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	body, err := newTestClient().Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if body != "<html>ok</html>" {
		t.Fatalf("unexpected body %q", body)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestFetchReportsStatusError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient().Fetch(context.Background(), server.URL)
	var statusErr *fetch.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("client errors must not be retried, got %d attempts", got)
	}
}

func TestFetchRejectsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if _, err := newTestClient().Fetch(context.Background(), server.URL); !errors.Is(err, fetch.ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
}
