package domain

import "time"

// ArticleJob is the input unit of one batch: a URL to score plus an
// optional display label. Jobs are immutable once submitted.
type ArticleJob struct {
	URL   string
	Label string
}

// Title returns the label when present and falls back to the URL.
func (j ArticleJob) Title() string {
	if j.Label != "" {
		return j.Label
	}
	return j.URL
}

// ProcessingStatus enumerates the terminal outcomes of one article pipeline.
type ProcessingStatus string

const (
	StatusOK           ProcessingStatus = "OK"
	StatusFetchError   ProcessingStatus = "FETCH_ERROR"
	StatusParsingError ProcessingStatus = "PARSING_ERROR"
	StatusTimeout      ProcessingStatus = "TIMEOUT"
)

// ProcessingResult is the output unit, exactly one per submitted job.
//
// Score and WordCount are both set or both nil, and both nil whenever
// Status != OK. ElapsedSeconds is set only for OK and TIMEOUT. The
// constructors below are the only way results are built, so the invariant
// holds by construction rather than caller discipline.
type ProcessingResult struct {
	URL            string
	Label          string
	Status         ProcessingStatus
	Score          *float64
	WordCount      *int
	ElapsedSeconds *float64
}

// Title mirrors ArticleJob.Title for display purposes.
func (r ProcessingResult) Title() string {
	if r.Label != "" {
		return r.Label
	}
	return r.URL
}

// OKResult builds a fully-scored result. Elapsed is the wall time the
// tokenizing stage actually consumed.
func OKResult(job ArticleJob, score float64, wordCount int, elapsed time.Duration) ProcessingResult {
	seconds := roundSeconds(elapsed)
	return ProcessingResult{
		URL:            job.URL,
		Label:          job.Label,
		Status:         StatusOK,
		Score:          &score,
		WordCount:      &wordCount,
		ElapsedSeconds: &seconds,
	}
}

// FetchErrorResult marks a job whose content could not be retrieved.
func FetchErrorResult(job ArticleJob) ProcessingResult {
	return ProcessingResult{
		URL:    job.URL,
		Label:  job.Label,
		Status: StatusFetchError,
	}
}

// ParsingErrorResult marks a job whose content was rejected by the sanitizer.
func ParsingErrorResult(job ArticleJob) ProcessingResult {
	return ProcessingResult{
		URL:    job.URL,
		Label:  job.Label,
		Status: StatusParsingError,
	}
}

// TimeoutResult marks a job whose fetch or tokenize stage exhausted its
// budget. Elapsed is reported as the full stage budget, not the partially
// consumed time.
func TimeoutResult(job ArticleJob, budget time.Duration) ProcessingResult {
	seconds := roundSeconds(budget)
	return ProcessingResult{
		URL:            job.URL,
		Label:          job.Label,
		Status:         StatusTimeout,
		ElapsedSeconds: &seconds,
	}
}

func roundSeconds(d time.Duration) float64 {
	return float64(d.Round(10*time.Millisecond)) / float64(time.Second)
}
