package usecase

import (
	"context"
	"sync"

	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/lexicon"
)

// Orchestrator runs one pipeline per article job concurrently and collects
// the complete result set. Jobs are causally independent: one slow or
// failing job never delays, cancels, or alters any sibling.
type Orchestrator struct {
	pipeline *Pipeline

	// maxConcurrency caps in-flight pipelines; zero or negative means one
	// goroutine per job with no bound.
	maxConcurrency int
}

// NewOrchestrator builds the batch component on top of a pipeline.
func NewOrchestrator(pipeline *Pipeline, maxConcurrency int) *Orchestrator {
	return &Orchestrator{pipeline: pipeline, maxConcurrency: maxConcurrency}
}

// ProcessBatch processes every job and returns exactly one result per job,
// duplicates preserved, in no particular order. It returns only after all
// spawned pipelines reach a terminal status; an individual timeout is a
// normal outcome, never a batch-level abort. An empty job list yields an
// empty result set without spawning anything.
func (o *Orchestrator) ProcessBatch(ctx context.Context, jobs []domain.ArticleJob, lex *lexicon.Lexicon) []domain.ProcessingResult {
	results := make([]domain.ProcessingResult, 0, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	// Each pipeline hands its result back over the channel; no shared
	// mutable collection, so no locks.
	out := make(chan domain.ProcessingResult, len(jobs))

	var semaphore chan struct{}
	if o.maxConcurrency > 0 {
		semaphore = make(chan struct{}, o.maxConcurrency)
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(j domain.ArticleJob) {
			defer wg.Done()
			if semaphore != nil {
				semaphore <- struct{}{}
				defer func() { <-semaphore }()
			}
			out <- o.pipeline.Process(ctx, j, lex)
		}(job)
	}

	wg.Wait()
	close(out)

	for result := range out {
		results = append(results, result)
	}

	return results
}
