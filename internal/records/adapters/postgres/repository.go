package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"webstats-service/internal/records/core/domain"
	"webstats-service/internal/records/core/ports"
)

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordRepositoryPort = (*RecordRepository)(nil)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS website_stats (
    id           BIGSERIAL PRIMARY KEY,
    website_id   TEXT        NOT NULL,
    record_date  TEXT        NOT NULL,
    record_time  TIMESTAMPTZ NOT NULL,
    chats        BIGINT      NOT NULL DEFAULT 0,
    missed_chats BIGINT      NOT NULL DEFAULT 0,
    dedupe_key   TEXT        NOT NULL UNIQUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// SQL template
const insertRecordSQL = `
INSERT INTO website_stats (
    website_id,
    record_date,
    record_time,
    chats,
    missed_chats,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *RecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return wrapPQ("create website_stats", err)
	}
	return nil
}

func (r *RecordRepository) InsertRecord(ctx context.Context, rec *domain.StoredRecord) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.WebsiteID,
		rec.Date,
		rec.RecordTime,
		rec.Chats,
		rec.MissedChats,
		rec.DedupeKey,
	)
	if err != nil {
		return false, wrapPQ("insert website_stats", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func wrapPQ(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s (%s): %w", op, pqErr.Code.Name(), err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
