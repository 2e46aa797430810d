package fiber

import (
	"context"
	"errors"
	"net/http"

	"webstats-service/internal/records/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreRecordUseCase interface {
	Execute(ctx context.Context, in usecase.StoreRecordInput) (bool, error)
	BulkStore(ctx context.Context, in usecase.BulkStoreInput) (usecase.BulkStoreResult, error)
}

type SyncUseCase interface {
	Execute(ctx context.Context) (usecase.BulkStoreResult, error)
}

type RecordHandler struct {
	storeUC StoreRecordUseCase
	syncUC  SyncUseCase
}

func NewRecordHandler(storeUC StoreRecordUseCase, syncUC SyncUseCase) *RecordHandler {
	return &RecordHandler{storeUC: storeUC, syncUC: syncUC}
}

// CreateRecord godoc
// @Summary Store a stats record
// @Description Stores one record; the same website and date is stored only once
// @Tags Records
// @Accept json
// @Produce json
// @Param request body CreateRecordRequest true "Record payload"
// @Success 201 {object} CreateRecordResponse
// @Success 200 {object} CreateRecordResponse "Duplicate record"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c *fiber.Ctx) error {
	var req CreateRecordRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateRecordResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateRecordResponse{Status: "created"})
}

// BulkCreateRecords godoc
// @Summary Bulk store stats records
// @Description Validates every record, then stores them individually
// @Tags Records
// @Accept json
// @Produce json
// @Param request body BulkCreateRecordsRequest true "Bulk payload"
// @Success 201 {object} BulkCreateRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/bulk [post]
func (h *RecordHandler) BulkCreateRecords(c *fiber.Ctx) error {
	var req BulkCreateRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Records) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "records_list_required",
		})
	}

	inputs := make([]usecase.StoreRecordInput, len(req.Records))
	for i, r := range req.Records {
		inputs[i] = toInput(r)
	}

	result, err := h.storeUC.BulkStore(c.UserContext(), usecase.BulkStoreInput{Records: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateRecordsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// SyncRecords godoc
// @Summary Copy the remote dataset into storage
// @Description Fetches the configured stats URL and stores every valid record. A failed fetch stores nothing.
// @Tags Records
// @Produce json
// @Success 200 {object} BulkCreateRecordsResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/sync [post]
func (h *RecordHandler) SyncRecords(c *fiber.Ctx) error {
	result, err := h.syncUC.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(BulkCreateRecordsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
		Skipped:    result.Skipped,
	})
}

func toInput(r CreateRecordRequest) usecase.StoreRecordInput {
	return usecase.StoreRecordInput{
		WebsiteID:   string(r.WebsiteID),
		Date:        r.Date,
		Chats:       r.Chats,
		MissedChats: r.MissedChats,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecord),
		errors.Is(err, usecase.ErrEmptyBatch):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
