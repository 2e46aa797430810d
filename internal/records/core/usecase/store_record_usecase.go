package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webstats-service/internal/records/core/domain"
	"webstats-service/internal/records/core/ports"
	statsdomain "webstats-service/internal/webstats/core/domain"
)

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrEmptyBatch    = errors.New("records list is empty")
)

type StoreRecordUseCase struct {
	repo ports.RecordRepositoryPort
}

func NewStoreRecordUseCase(repo ports.RecordRepositoryPort) *StoreRecordUseCase {
	return &StoreRecordUseCase{repo: repo}
}

type StoreRecordInput struct {
	WebsiteID   string
	Date        string
	Chats       int64
	MissedChats int64
}

func (uc *StoreRecordUseCase) Execute(ctx context.Context, in StoreRecordInput) (bool, error) {
	if err := validateInput(in); err != nil {
		return false, err
	}

	// validateInput already checked the date
	at, _ := statsdomain.ParseDate(in.Date)

	r := &domain.StoredRecord{
		WebsiteID:   in.WebsiteID,
		Date:        in.Date,
		RecordTime:  at,
		Chats:       in.Chats,
		MissedChats: in.MissedChats,
		DedupeKey:   buildDedupeKey(in.WebsiteID, at),
	}

	created, err := uc.repo.InsertRecord(ctx, r)
	if err != nil {
		return false, err
	}

	return created, nil
}

// buildDedupeKey keys on the parsed instant, so different spellings of the
// same date collide. Two records for the same website and instant keep only
// the first one.
func buildDedupeKey(websiteID string, at time.Time) string {
	return fmt.Sprintf("%s|%s", websiteID, at.UTC().Format(time.RFC3339Nano))
}

type BulkStoreInput struct {
	Records []StoreRecordInput
}

type BulkStoreResult struct {
	Created    int
	Duplicates int
	Skipped    int
}

// BulkStore validates the whole batch before writing anything.
func (uc *StoreRecordUseCase) BulkStore(ctx context.Context, in BulkStoreInput) (BulkStoreResult, error) {
	var res BulkStoreResult

	if len(in.Records) == 0 {
		return res, ErrEmptyBatch
	}

	for i, r := range in.Records {
		if err := validateInput(r); err != nil {
			return res, fmt.Errorf("record %d: %w", i, err)
		}
	}

	for _, r := range in.Records {
		ok, err := uc.Execute(ctx, r)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func validateInput(in StoreRecordInput) error {
	if in.WebsiteID == "" {
		return fmt.Errorf("%w: websiteId is required", ErrInvalidRecord)
	}
	if _, ok := statsdomain.ParseDate(in.Date); !ok {
		return fmt.Errorf("%w: unparseable date %q", ErrInvalidRecord, in.Date)
	}
	if in.Chats < 0 || in.MissedChats < 0 {
		return fmt.Errorf("%w: chat counts must not be negative", ErrInvalidRecord)
	}
	return nil
}
