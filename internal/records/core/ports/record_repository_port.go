package ports

import (
	"context"

	"webstats-service/internal/records/core/domain"
)

type RecordRepositoryPort interface {
	// InsertRecord:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> same website and date already stored
	//   created = false, err != nil -> DB error
	InsertRecord(ctx context.Context, r *domain.StoredRecord) (created bool, err error)
}
