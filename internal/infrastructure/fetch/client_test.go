package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchReturnsBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "JaundiceRate/1.0" {
			t.Errorf("unexpected user agent: %s", got)
		}
		_, _ = w.Write([]byte("<html><body>статья</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.Client())
	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if body != "<html><body>статья</body></html>" {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.Client())
	if _, err := client.Fetch(context.Background(), server.URL); !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	t.Parallel()

	client := NewClient(nil)
	_, err := client.Fetch(context.Background(), "http://127.0.0.1:1")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("connection refusal must not look like a timeout: %v", err)
	}
}

func TestFetchMalformedURL(t *testing.T) {
	t.Parallel()

	client := NewClient(nil)
	if _, err := client.Fetch(context.Background(), "$&*%JF"); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestFetchDeadlineExceeded(t *testing.T) {
	t.Parallel()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(slow.Client())
	_, err := client.Fetch(ctx, slow.URL)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}
