package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"JaundiceRate/internal/config"
	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/infrastructure/fetch"
	"JaundiceRate/internal/infrastructure/morph"
	"JaundiceRate/internal/infrastructure/sanitize"
	"JaundiceRate/internal/lexicon"
	"JaundiceRate/internal/logging"
	"JaundiceRate/internal/server"
	"JaundiceRate/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg          config.Config
	logger       *slog.Logger
	orchestrator *usecase.Orchestrator
	lexicons     *lexicon.Store
	tokenizer    *morph.Tokenizer
}

// New builds a runnable application instance: fetcher, sanitizer registry,
// tokenizer, lexicon, pipeline, and orchestrator.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	tokenizer := morph.NewTokenizer()

	lex, err := lexicon.Load(tokenizer.Normalize, cfg.Lexicon.Paths()...)
	if err != nil {
		return nil, fmt.Errorf("load charged dictionaries: %w", err)
	}
	baseLogger.Info("charged dictionaries loaded", "words", lex.Len())

	registry := sanitize.NewRegistry(sanitize.NewGeneric())
	registry.Register("inosmi.ru", sanitize.NewInosmi())

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Fetcher:   fetch.NewClient(nil),
		Resolver:  registry,
		Tokenizer: tokenizer,
		Timeouts: usecase.Timeouts{
			Fetch:    cfg.Processing.FetchTimeout.Std(),
			Tokenize: cfg.Processing.TokenizeTimeout.Std(),
		},
		Logger: baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:          cfg,
		logger:       baseLogger,
		orchestrator: usecase.NewOrchestrator(pipeline, cfg.Processing.MaxConcurrency),
		lexicons:     lexicon.NewStore(lex),
		tokenizer:    tokenizer,
	}, nil
}

// ScanBatch runs one batch against the current lexicon snapshot.
func (a *Application) ScanBatch(ctx context.Context, jobs []domain.ArticleJob) []domain.ProcessingResult {
	return a.orchestrator.ProcessBatch(ctx, jobs, a.lexicons.Snapshot())
}

// Serve runs the HTTP surface until ctx is cancelled. When dictionary
// watching is enabled, reloads swap the lexicon between batches.
func (a *Application) Serve(ctx context.Context) error {
	handler := server.New(
		a.orchestrator,
		a.lexicons,
		a.cfg.Server.MaxURLsPerRequest,
		a.logger.With("component", "server"),
	)

	if a.cfg.Lexicon.Watch {
		go func() {
			err := lexicon.Watch(
				ctx,
				a.logger.With("component", "lexicon"),
				a.tokenizer.Normalize,
				a.lexicons.Replace,
				a.cfg.Lexicon.Paths()...,
			)
			if err != nil {
				a.logger.Error("dictionary watcher stopped", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              a.cfg.Server.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "address", a.cfg.Server.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
