package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"webstats-service/internal/webstats/core/domain"
	"webstats-service/internal/webstats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type SummarizeUseCase interface {
	Execute(ctx context.Context, in usecase.SummarizeInput) (*domain.Summary, error)
}

type SummaryHandler struct {
	uc SummarizeUseCase
}

func NewSummaryHandler(uc SummarizeUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// GetSummary godoc
// @Summary Aggregate chat statistics per website
// @Description Sums chats and missed chats per website, optionally within an inclusive date range. Dates that do not parse are ignored.
// @Tags Summary
// @Produce json
// @Param start_date query string false "Lower bound (YYYY-MM-DD or RFC3339)"
// @Param end_date query string false "Upper bound (YYYY-MM-DD or RFC3339)"
// @Param source query string false "Record source: remote | stored"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	in := usecase.SummarizeInput{
		StartDate: c.Query("start_date", ""),
		EndDate:   c.Query("end_date", ""),
		Source:    c.Query("source", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSource),
			errors.Is(err, usecase.ErrStoreUnavailable):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := SummaryResponse{
		Source:    string(res.Source),
		StartDate: formatBound(res.StartDate),
		EndDate:   formatBound(res.EndDate),
		Results:   make([]AggregateResultResponse, 0, len(res.Results)),
	}

	for _, r := range res.Results {
		resp.Results = append(resp.Results, AggregateResultResponse{
			WebsiteID:        r.WebsiteID,
			TotalChats:       r.TotalChats,
			TotalMissedChats: r.TotalMissedChats,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func formatBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
