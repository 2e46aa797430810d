package ports

import (
	"context"

	"webstats-service/internal/webstats/core/domain"
)

// RecordSourcePort is the remote dataset. Implementations absorb transport
// failures and return an empty slice instead.
type RecordSourcePort interface {
	Records(ctx context.Context) []domain.Record
}

type RecordReaderPort interface {
	ListRecords(ctx context.Context) ([]domain.Record, error)
}
