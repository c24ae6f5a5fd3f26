package sanitize

import (
	"net/url"
	"strings"

	"JaundiceRate/internal/ports"
)

// Registry maps site hosts to their sanitizer implementations, with an
// optional fallback used for unknown hosts.
type Registry struct {
	extractors map[string]ports.Extractor
	fallback   ports.Extractor
}

// NewRegistry builds an empty registry with the given fallback. A nil
// fallback means unknown hosts cannot be sanitized at all.
func NewRegistry(fallback ports.Extractor) *Registry {
	return &Registry{
		extractors: map[string]ports.Extractor{},
		fallback:   fallback,
	}
}

// Register adds or replaces the sanitizer for a host (e.g. "inosmi.ru").
// The host matches itself and any subdomain.
func (r *Registry) Register(host string, extractor ports.Extractor) {
	if r.extractors == nil {
		r.extractors = map[string]ports.Extractor{}
	}
	r.extractors[strings.ToLower(host)] = extractor
}

// Resolve picks the sanitizer for an article URL. Malformed URLs and
// unknown hosts fall through to the fallback.
func (r *Registry) Resolve(rawURL string) ports.Extractor {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return r.fallback
	}

	host := strings.ToLower(parsed.Hostname())
	for registered, extractor := range r.extractors {
		if host == registered || strings.HasSuffix(host, "."+registered) {
			return extractor
		}
	}

	return r.fallback
}
