package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/lexicon"
)

// BatchProcessor is the single operation the HTTP surface consumes.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, jobs []domain.ArticleJob, lex *lexicon.Lexicon) []domain.ProcessingResult
}

// Handler serves the scoring endpoint. Article-level failures surface only
// inside the JSON result array; the boundary itself errors only on
// structurally invalid requests.
type Handler struct {
	processor BatchProcessor
	lexicons  *lexicon.Store
	maxURLs   int
	logger    *slog.Logger
	router    chi.Router
}

// resultItem is the wire shape of one processed article.
type resultItem struct {
	Status     domain.ProcessingStatus `json:"status"`
	URL        string                  `json:"url"`
	Score      *float64                `json:"score"`
	WordsCount *int                    `json:"words_count"`
}

type errorBody struct {
	Error string `json:"error"`
}

// New wires the handler and its routes.
func New(processor BatchProcessor, lexicons *lexicon.Store, maxURLs int, logger *slog.Logger) *Handler {
	h := &Handler{
		processor: processor,
		lexicons:  lexicons,
		maxURLs:   maxURLs,
		logger:    logger,
		router:    chi.NewRouter(),
	}

	h.router.Get("/", h.handleScore)
	h.router.Get("/healthz", h.handleHealth)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	urls := splitURLs(r.URL.Query().Get("urls"))
	if len(urls) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "no urls provided in request"})
		return
	}
	if len(urls) > h.maxURLs {
		h.writeJSON(w, http.StatusBadRequest, errorBody{
			Error: "too many urls in request, should be " + strconv.Itoa(h.maxURLs) + " or less",
		})
		return
	}

	jobs := make([]domain.ArticleJob, 0, len(urls))
	for _, u := range urls {
		jobs = append(jobs, domain.ArticleJob{URL: u})
	}

	results := h.processor.ProcessBatch(r.Context(), jobs, h.lexicons.Snapshot())

	items := make([]resultItem, 0, len(results))
	for _, res := range results {
		items = append(items, resultItem{
			Status:     res.Status,
			URL:        res.URL,
			Score:      res.Score,
			WordsCount: res.WordCount,
		})
	}

	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("write response", "error", err)
	}
}

func splitURLs(raw string) []string {
	var urls []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
