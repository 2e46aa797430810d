package usecase

import (
	"time"

	"webstats-service/internal/webstats/core/domain"
)

// DataProcessor filters records by an optional inclusive date range and sums
// chats per website. Its bounds never change after construction.
type DataProcessor struct {
	start *time.Time
	end   *time.Time
}

func NewDataProcessor(start, end *time.Time) *DataProcessor {
	return &DataProcessor{start: boundOf(start), end: boundOf(end)}
}

// NewDataProcessorFromStrings parses both bounds with domain.ParseDate.
// A bound that is empty or does not parse is left open.
func NewDataProcessorFromStrings(start, end string) *DataProcessor {
	return &DataProcessor{start: parseBound(start), end: parseBound(end)}
}

func boundOf(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := *t
	return &v
}

func parseBound(s string) *time.Time {
	t, ok := domain.ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}

func (p *DataProcessor) StartDate() *time.Time { return boundOf(p.start) }

func (p *DataProcessor) EndDate() *time.Time { return boundOf(p.end) }

func (p *DataProcessor) FilterAndAggregate(records []domain.Record) []domain.AggregateResult {
	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if p.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return aggregate(filtered)
}

func (p *DataProcessor) matches(r domain.Record) bool {
	if p.start == nil && p.end == nil {
		return true
	}

	// an unparseable date never satisfies a bound
	at, ok := domain.ParseDate(r.Date)
	if !ok {
		return false
	}

	if p.start != nil && at.Before(*p.start) {
		return false
	}
	if p.end != nil && at.After(*p.end) {
		return false
	}
	return true
}

func aggregate(records []domain.Record) []domain.AggregateResult {
	results := make([]domain.AggregateResult, 0)
	index := make(map[domain.WebsiteID]int)

	for _, r := range records {
		i, seen := index[r.WebsiteID]
		if !seen {
			i = len(results)
			index[r.WebsiteID] = i
			results = append(results, domain.AggregateResult{WebsiteID: r.WebsiteID})
		}
		results[i].TotalChats += r.Chats
		results[i].TotalMissedChats += r.MissedChats
	}

	return results
}
