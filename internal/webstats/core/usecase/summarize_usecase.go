package usecase

import (
	"context"
	"errors"

	"webstats-service/internal/webstats/core/domain"
	"webstats-service/internal/webstats/core/ports"
)

var (
	ErrInvalidSource    = errors.New("invalid source")
	ErrStoreUnavailable = errors.New("record store is not configured")
)

type SummarizeInput struct {
	StartDate string
	EndDate   string
	Source    string // "" / "remote" / "stored"
}

type SummarizeUseCase struct {
	source ports.RecordSourcePort
	reader ports.RecordReaderPort // nil when storage is disabled
}

func NewSummarizeUseCase(source ports.RecordSourcePort, reader ports.RecordReaderPort) *SummarizeUseCase {
	return &SummarizeUseCase{source: source, reader: reader}
}

// Execute loads records from the selected source and aggregates them. Bounds
// that do not parse are ignored rather than rejected.
func (uc *SummarizeUseCase) Execute(ctx context.Context, in SummarizeInput) (*domain.Summary, error) {
	src := domain.Source(in.Source)
	if src == "" {
		src = domain.SourceRemote
	}

	var records []domain.Record
	switch src {
	case domain.SourceRemote:
		records = uc.source.Records(ctx)
	case domain.SourceStored:
		if uc.reader == nil {
			return nil, ErrStoreUnavailable
		}
		stored, err := uc.reader.ListRecords(ctx)
		if err != nil {
			return nil, err
		}
		records = stored
	default:
		return nil, ErrInvalidSource
	}

	p := NewDataProcessorFromStrings(in.StartDate, in.EndDate)

	return &domain.Summary{
		Source:    src,
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Results:   p.FilterAndAggregate(records),
	}, nil
}
