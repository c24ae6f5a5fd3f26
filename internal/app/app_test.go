package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"JaundiceRate/internal/config"
	"JaundiceRate/internal/domain"
)

const articleHTML = `<html><body><article>
<h1>Это было ужасно</h1>
<p>Это было ужасно, просто кошмар и настоящая паника.</p>
</article></body></html>`

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	positive := filepath.Join(dir, "positive.txt")
	negative := filepath.Join(dir, "negative.txt")
	if err := os.WriteFile(positive, []byte("сенсация\n"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	if err := os.WriteFile(negative, []byte("ужасно\nкошмар\nпаника\n"), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}

	return config.Config{
		Logging: config.LoggingConfig{Level: "error"},
		Lexicon: config.LexiconConfig{
			PositiveWordsPath: positive,
			NegativeWordsPath: negative,
		},
		Processing: config.ProcessingConfig{
			FetchTimeout:    config.Duration(2 * time.Second),
			TokenizeTimeout: config.Duration(2 * time.Second),
		},
		Server: config.ServerConfig{Address: ":0", MaxURLsPerRequest: 10},
	}
}

func TestScanBatchEndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/article.html":
			_, _ = w.Write([]byte(articleHTML))
		case "/front.html":
			_, _ = w.Write([]byte(`<html><body><nav>меню</nav></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	application, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	jobs := []domain.ArticleJob{
		{URL: server.URL + "/article.html", Label: "Ужасная статья"},
		{URL: server.URL + "/front.html"},
		{URL: server.URL + "/missing.html"},
		{URL: "http://127.0.0.1:1/unroutable"},
	}

	results := application.ScanBatch(context.Background(), jobs)
	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}

	byURL := map[string]domain.ProcessingResult{}
	for _, res := range results {
		byURL[res.URL] = res
	}

	article := byURL[server.URL+"/article.html"]
	if article.Status != domain.StatusOK {
		t.Fatalf("article status: %s", article.Status)
	}
	if article.WordCount == nil || *article.WordCount != 11 {
		t.Fatalf("unexpected word count: %v", article.WordCount)
	}
	if article.Score == nil || *article.Score != 36.36 {
		t.Fatalf("unexpected score: %v", article.Score)
	}
	if article.Title() != "Ужасная статья" {
		t.Fatalf("unexpected title: %s", article.Title())
	}

	if got := byURL[server.URL+"/front.html"].Status; got != domain.StatusParsingError {
		t.Fatalf("front page status: %s", got)
	}
	if got := byURL[server.URL+"/missing.html"].Status; got != domain.StatusFetchError {
		t.Fatalf("missing page status: %s", got)
	}
	if got := byURL["http://127.0.0.1:1/unroutable"].Status; got != domain.StatusFetchError {
		t.Fatalf("unroutable status: %s", got)
	}
}

func TestNewFailsWithoutDictionaries(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Lexicon.NegativeWordsPath = filepath.Join(t.TempDir(), "absent.txt")

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error when a dictionary is missing")
	}
}
