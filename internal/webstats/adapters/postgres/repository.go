package postgres

import (
	"context"
	"fmt"

	platformpg "webstats-service/internal/platform/postgres"
	"webstats-service/internal/webstats/core/domain"
	"webstats-service/internal/webstats/core/ports"
)

type RowScanner = platformpg.Rows

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ ports.RecordReaderPort = (*StatsRepository)(nil)

// Date filtering stays in the processor so stored and remote data follow the
// same rules.
const listRecordsSQL = `
SELECT
    website_id,
    record_date,
    chats,
    missed_chats
FROM website_stats
ORDER BY id`

func (r *StatsRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, listRecordsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			websiteID   string
			date        string
			chats       int64
			missedChats int64
		)
		if err := rows.Scan(&websiteID, &date, &chats, &missedChats); err != nil {
			return nil, err
		}
		records = append(records, domain.Record{
			WebsiteID:   domain.WebsiteID(websiteID),
			Date:        date,
			Chats:       chats,
			MissedChats: missedChats,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
