package usecase

import (
	"context"

	"github.com/rs/zerolog"

	statsports "webstats-service/internal/webstats/core/ports"
)

// SyncUseCase copies the remote dataset into the record store.
type SyncUseCase struct {
	source statsports.RecordSourcePort
	store  *StoreRecordUseCase
	logger zerolog.Logger
}

func NewSyncUseCase(source statsports.RecordSourcePort, store *StoreRecordUseCase, logger zerolog.Logger) *SyncUseCase {
	return &SyncUseCase{source: source, store: store, logger: logger}
}

// Execute skips remote records that would fail validation instead of
// rejecting the whole dataset.
func (uc *SyncUseCase) Execute(ctx context.Context) (BulkStoreResult, error) {
	var res BulkStoreResult

	remote := uc.source.Records(ctx)

	valid := make([]StoreRecordInput, 0, len(remote))
	for _, r := range remote {
		in := StoreRecordInput{
			WebsiteID:   string(r.WebsiteID),
			Date:        r.Date,
			Chats:       r.Chats,
			MissedChats: r.MissedChats,
		}
		if err := validateInput(in); err != nil {
			uc.logger.Warn().Err(err).Str("website_id", in.WebsiteID).Msg("skipping remote record")
			res.Skipped++
			continue
		}
		valid = append(valid, in)
	}

	if len(valid) == 0 {
		return res, nil
	}

	stored, err := uc.store.BulkStore(ctx, BulkStoreInput{Records: valid})
	stored.Skipped = res.Skipped
	if err != nil {
		return stored, err
	}

	uc.logger.Info().
		Int("created", stored.Created).
		Int("duplicates", stored.Duplicates).
		Int("skipped", stored.Skipped).
		Msg("sync finished")

	return stored, nil
}
