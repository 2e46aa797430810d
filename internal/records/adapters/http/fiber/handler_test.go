package fiber_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "webstats-service/internal/records/adapters/http/fiber"
	"webstats-service/internal/records/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreUseCase struct {
	ExecuteFn   func(ctx context.Context, in usecase.StoreRecordInput) (bool, error)
	BulkFn      func(ctx context.Context, in usecase.BulkStoreInput) (usecase.BulkStoreResult, error)
	lastInput   usecase.StoreRecordInput
	lastBulk    usecase.BulkStoreInput
	executeCall bool
	bulkCall    bool
}

func (f *fakeStoreUseCase) Execute(ctx context.Context, in usecase.StoreRecordInput) (bool, error) {
	f.executeCall = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return true, nil
}

func (f *fakeStoreUseCase) BulkStore(ctx context.Context, in usecase.BulkStoreInput) (usecase.BulkStoreResult, error) {
	f.bulkCall = true
	f.lastBulk = in
	if f.BulkFn != nil {
		return f.BulkFn(ctx, in)
	}
	return usecase.BulkStoreResult{Created: len(in.Records)}, nil
}

type fakeSyncUseCase struct {
	ExecuteFn func(ctx context.Context) (usecase.BulkStoreResult, error)
}

func (f *fakeSyncUseCase) Execute(ctx context.Context) (usecase.BulkStoreResult, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return usecase.BulkStoreResult{}, nil
}

func setupApp(t *testing.T, store httpadapter.StoreRecordUseCase, sync httpadapter.SyncUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewRecordHandler(store, sync)
	app.Post("/records", h.CreateRecord)
	app.Post("/records/bulk", h.BulkCreateRecords)
	app.Post("/records/sync", h.SyncRecords)
	return app
}

func doJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

// ------------------------------------------------------------
// CreateRecord
// ------------------------------------------------------------

func TestCreateRecord_Created(t *testing.T) {
	store := &fakeStoreUseCase{}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records", `{"websiteId": 7, "date": "2023-01-01", "chats": 10, "missedChats": 2}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if store.lastInput.WebsiteID != "7" || store.lastInput.Chats != 10 || store.lastInput.MissedChats != 2 {
		t.Fatalf("unexpected input: %+v", store.lastInput)
	}
}

func TestCreateRecord_Duplicate(t *testing.T) {
	store := &fakeStoreUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.StoreRecordInput) (bool, error) {
			return false, nil
		},
	}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records", `{"websiteId": "a", "date": "2023-01-01"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	var out httpadapter.CreateRecordResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if out.Status != "duplicate" {
		t.Fatalf("expected duplicate status, got %s", out.Status)
	}
}

func TestCreateRecord_InvalidJSON(t *testing.T) {
	store := &fakeStoreUseCase{}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records", `{"websiteId":`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if store.executeCall {
		t.Fatalf("usecase should not be called on invalid json")
	}
}

func TestCreateRecord_InvalidRecord(t *testing.T) {
	store := &fakeStoreUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.StoreRecordInput) (bool, error) {
			return false, fmt.Errorf("%w: websiteId is required", usecase.ErrInvalidRecord)
		},
	}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records", `{"date": "2023-01-01"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	var out httpadapter.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if out.Error != "invalid_record" {
		t.Fatalf("expected invalid_record, got %s", out.Error)
	}
}

func TestCreateRecord_InternalError(t *testing.T) {
	store := &fakeStoreUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.StoreRecordInput) (bool, error) {
			return false, errors.New("db failure")
		},
	}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records", `{"websiteId": 1, "date": "2023-01-01"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// BulkCreateRecords
// ------------------------------------------------------------

func TestBulkCreateRecords_Success(t *testing.T) {
	store := &fakeStoreUseCase{
		BulkFn: func(ctx context.Context, in usecase.BulkStoreInput) (usecase.BulkStoreResult, error) {
			return usecase.BulkStoreResult{Created: 2, Duplicates: 1}, nil
		},
	}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records/bulk", `{"records": [
		{"websiteId": 1, "date": "2023-01-01", "chats": 10, "missedChats": 2},
		{"websiteId": 1, "date": "2023-01-02", "chats": 5, "missedChats": 1},
		{"websiteId": 2, "date": "2023-01-01", "chats": 8, "missedChats": 3}
	]}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if len(store.lastBulk.Records) != 3 {
		t.Fatalf("expected 3 records passed to usecase, got %d", len(store.lastBulk.Records))
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"created":2,"duplicates":1}` {
		t.Fatalf("unexpected body: %s", string(body))
	}
}

func TestBulkCreateRecords_EmptyList(t *testing.T) {
	store := &fakeStoreUseCase{}
	app := setupApp(t, store, &fakeSyncUseCase{})

	resp := doJSON(t, app, "/records/bulk", `{"records": []}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if store.bulkCall {
		t.Fatalf("usecase should not be called for empty list")
	}
}

// ------------------------------------------------------------
// SyncRecords
// ------------------------------------------------------------

func TestSyncRecords_Success(t *testing.T) {
	sync := &fakeSyncUseCase{
		ExecuteFn: func(ctx context.Context) (usecase.BulkStoreResult, error) {
			return usecase.BulkStoreResult{Created: 3, Skipped: 1}, nil
		},
	}
	app := setupApp(t, &fakeStoreUseCase{}, sync)

	resp := doJSON(t, app, "/records/sync", "")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	var out httpadapter.BulkCreateRecordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if out.Created != 3 || out.Skipped != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestSyncRecords_Error(t *testing.T) {
	sync := &fakeSyncUseCase{
		ExecuteFn: func(ctx context.Context) (usecase.BulkStoreResult, error) {
			return usecase.BulkStoreResult{}, errors.New("db failure")
		},
	}
	app := setupApp(t, &fakeStoreUseCase{}, sync)

	resp := doJSON(t, app, "/records/sync", "")

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
