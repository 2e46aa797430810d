package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	httpadapter "webstats-service/internal/webstats/adapters/http/fiber"
	"webstats-service/internal/webstats/core/domain"
	"webstats-service/internal/webstats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeSummarizeUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.SummarizeInput) (*domain.Summary, error)
	lastInput usecase.SummarizeInput
	called    bool
}

func (f *fakeSummarizeUseCase) Execute(ctx context.Context, in usecase.SummarizeInput) (*domain.Summary, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Summary{Source: domain.SourceRemote, Results: []domain.AggregateResult{}}, nil
}

func setupApp(t *testing.T, uc httpadapter.SummarizeUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewSummaryHandler(uc)
	app.Get("/summary", h.GetSummary)
	return app
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGetSummary_Success(t *testing.T) {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	uc := &fakeSummarizeUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.SummarizeInput) (*domain.Summary, error) {
			if in.StartDate != "2023-01-02" {
				t.Fatalf("expected start_date=2023-01-02, got %s", in.StartDate)
			}
			if in.EndDate != "" {
				t.Fatalf("expected empty end_date, got %s", in.EndDate)
			}
			return &domain.Summary{
				Source:    domain.SourceRemote,
				StartDate: &start,
				Results: []domain.AggregateResult{
					{WebsiteID: "1", TotalChats: 5, TotalMissedChats: 1},
				},
			}, nil
		},
	}

	app := setupApp(t, uc)

	params := url.Values{}
	params.Set("start_date", "2023-01-02")

	req := httptest.NewRequest(http.MethodGet, "/summary?"+params.Encode(), nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	want := `{"source":"remote","start_date":"2023-01-02T00:00:00Z","results":[{"websiteId":1,"totalChats":5,"totalMissedChats":1}]}`
	if string(body) != want {
		t.Fatalf("expected body %s, got %s", want, string(body))
	}
}

func TestGetSummary_EmptyResultsIsArray(t *testing.T) {
	app := setupApp(t, &fakeSummarizeUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var out httpadapter.SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if out.Results == nil || len(out.Results) != 0 {
		t.Fatalf("expected empty results array, got %#v", out.Results)
	}
}

func TestGetSummary_PassesSource(t *testing.T) {
	uc := &fakeSummarizeUseCase{}
	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/summary?source=stored", nil)

	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if uc.lastInput.Source != "stored" {
		t.Fatalf("expected source=stored, got %s", uc.lastInput.Source)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestGetSummary_InvalidSource(t *testing.T) {
	uc := &fakeSummarizeUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.SummarizeInput) (*domain.Summary, error) {
			return nil, usecase.ErrInvalidSource
		},
	}
	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/summary?source=ftp", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetSummary_InternalError(t *testing.T) {
	uc := &fakeSummarizeUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.SummarizeInput) (*domain.Summary, error) {
			return nil, errors.New("db failure")
		},
	}
	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/summary?source=stored", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
