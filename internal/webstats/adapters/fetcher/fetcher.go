package fetcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"webstats-service/internal/webstats/core/domain"
	"webstats-service/internal/webstats/core/ports"
)

// HTTPGetter performs a single GET and returns the body of a 2xx response.
// Any other outcome is an error.
type HTTPGetter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// FetchResult keeps the failure reason that FetchData swallows.
type FetchResult struct {
	Records   []domain.Record
	Malformed int // entries kept despite a decode error in one of their fields
	Err       error
}

func (r FetchResult) OK() bool { return r.Err == nil }

type HTTPFetcher struct {
	url    string
	getter HTTPGetter
	logger zerolog.Logger
}

var _ ports.RecordSourcePort = (*HTTPFetcher)(nil)

func NewHTTPFetcher(url string, getter HTTPGetter, logger zerolog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		url:    url,
		getter: getter,
		logger: logger.With().Str("component", "fetcher").Logger(),
	}
}

func (f *HTTPFetcher) URL() string { return f.url }

// Fetch downloads and decodes the record array at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) FetchResult {
	body, err := f.getter.Get(ctx, url)
	if err != nil {
		return FetchResult{Records: []domain.Record{}, Err: err}
	}

	// only a body that is not a JSON array fails the fetch
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return FetchResult{Records: []domain.Record{}, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	res := FetchResult{Records: make([]domain.Record, 0, len(entries))}
	for i, raw := range entries {
		var r domain.Record
		if err := json.Unmarshal(raw, &r); err != nil {
			f.logger.Warn().Err(err).Int("index", i).Str("url", url).Msg("malformed record")
			res.Malformed++
		}
		res.Records = append(res.Records, r)
	}

	return res
}

// FetchData never fails: errors are logged and an empty slice is returned.
func (f *HTTPFetcher) FetchData(ctx context.Context, url string) []domain.Record {
	res := f.Fetch(ctx, url)
	if !res.OK() {
		f.logger.Error().Err(res.Err).Str("url", url).Msg("Error fetching data")
		return res.Records
	}

	f.logger.Debug().Str("url", url).Int("count", len(res.Records)).Int("malformed", res.Malformed).Msg("fetched records")
	return res.Records
}

func (f *HTTPFetcher) Records(ctx context.Context) []domain.Record {
	return f.FetchData(ctx, f.url)
}
