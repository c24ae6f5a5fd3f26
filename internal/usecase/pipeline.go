package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/lexicon"
	"JaundiceRate/internal/ports"
	"JaundiceRate/internal/rate"
)

// Timeouts holds the independent per-stage budgets. Fetch and tokenize
// each get their own full budget; they never share a combined clock.
type Timeouts struct {
	Fetch    time.Duration
	Tokenize time.Duration
}

// PipelineDeps wires the external capabilities into the article pipeline.
type PipelineDeps struct {
	Fetcher   ports.Fetcher
	Resolver  ExtractorResolver
	Tokenizer ports.Tokenizer
	Timeouts  Timeouts
	Logger    *slog.Logger
}

// ExtractorResolver picks a sanitizer for an article URL. A nil extractor
// means the content cannot be recognized at all.
type ExtractorResolver interface {
	Resolve(url string) ports.Extractor
}

// Pipeline drives one article through fetch, extract, tokenize, and score.
// Every failure mode resolves to a ProcessingStatus; nothing propagates
// past Process.
type Pipeline struct {
	fetcher   ports.Fetcher
	resolver  ExtractorResolver
	tokenizer ports.Tokenizer
	timeouts  Timeouts
	logger    *slog.Logger
}

// NewPipeline constructs the per-article processing component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		fetcher:   deps.Fetcher,
		resolver:  deps.Resolver,
		tokenizer: deps.Tokenizer,
		timeouts:  deps.Timeouts,
		logger:    deps.Logger,
	}
}

// Process transforms one job into exactly one result. Stage order is
// strict: fetch completes before extraction begins, extraction before
// tokenizing, tokenizing before scoring.
func (p *Pipeline) Process(ctx context.Context, job domain.ArticleJob, lex *lexicon.Lexicon) domain.ProcessingResult {
	html, result, done := p.fetchStage(ctx, job)
	if done {
		return result
	}

	text, result, done := p.extractStage(job, html)
	if done {
		return result
	}

	tokens, elapsed, result, done := p.tokenizeStage(ctx, job, text)
	if done {
		return result
	}

	score := rate.Jaundice(tokens, lex)
	return domain.OKResult(job, score, len(tokens), elapsed)
}

func (p *Pipeline) fetchStage(ctx context.Context, job domain.ArticleJob) (html string, result domain.ProcessingResult, done bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.timeouts.Fetch)
	defer cancel()

	html, err := p.fetcher.Fetch(fetchCtx, job.URL)
	switch {
	case err == nil:
		return html, domain.ProcessingResult{}, false
	case errors.Is(err, context.DeadlineExceeded):
		p.debug("fetch timed out", "url", job.URL, "budget", p.timeouts.Fetch)
		return "", domain.TimeoutResult(job, p.timeouts.Fetch), true
	default:
		p.debug("fetch failed", "url", job.URL, "error", err)
		return "", domain.FetchErrorResult(job), true
	}
}

func (p *Pipeline) extractStage(job domain.ArticleJob, html string) (text string, result domain.ProcessingResult, done bool) {
	extractor := p.resolver.Resolve(job.URL)
	if extractor == nil {
		p.debug("no sanitizer for url", "url", job.URL)
		return "", domain.ParsingErrorResult(job), true
	}

	text, err := extractor.Extract(html)
	if err != nil {
		p.debug("sanitizer rejected content", "url", job.URL, "error", err)
		return "", domain.ParsingErrorResult(job), true
	}

	return text, domain.ProcessingResult{}, false
}

func (p *Pipeline) tokenizeStage(ctx context.Context, job domain.ArticleJob, text string) (tokens []string, elapsed time.Duration, result domain.ProcessingResult, done bool) {
	tokenizeCtx, cancel := context.WithTimeout(ctx, p.timeouts.Tokenize)
	defer cancel()

	start := time.Now()
	tokens, err := p.tokenizer.Split(tokenizeCtx, text)
	elapsed = time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.debug("tokenize timed out", "url", job.URL, "budget", p.timeouts.Tokenize)
			return nil, 0, domain.TimeoutResult(job, p.timeouts.Tokenize), true
		}
		// Tokenizers only fail through their context.
		p.debug("tokenize aborted", "url", job.URL, "error", err)
		return nil, 0, domain.TimeoutResult(job, p.timeouts.Tokenize), true
	}

	return tokens, elapsed, domain.ProcessingResult{}, false
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
