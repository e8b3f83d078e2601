package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"affiliate-tracker/internal/adapter/usecase"
	"affiliate-tracker/internal/config/configs"
	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
	"affiliate-tracker/internal/core/port/mocks"
)

func testHandler(t *testing.T) (*mocks.MockTrackingUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockTrackingUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := configs.HTTP{CORSOrigins: []string{"*"}, RequestTimeout: 5 * time.Second}
	return svc, NewHandler(svc, logger, cfg, nil).Router()
}

func doGET(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestHealth(t *testing.T) {
	_, h := testHandler(t)
	rec, body := doGET(t, h, "/health")
	if rec.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected health response: %d %v", rec.Code, body)
	}
}

// TestClickMissingParams checks that an incomplete click request is rejected
// before the usecase runs: no LogClick expectation is registered, so any
// write attempt fails the test.
func TestClickMissingParams(t *testing.T) {
	_, h := testHandler(t)
	for _, target := range []string{
		"/click",
		"/click?affiliate_id=1&campaign_id=1",
		"/click?affiliate_id=1&click_id=abc",
		"/click?campaign_id=1&click_id=abc",
	} {
		rec, body := doGET(t, h, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
		if body["error"] != "Missing affiliate_id, campaign_id, or click_id" {
			t.Fatalf("%s: unexpected error body: %v", target, body)
		}
	}
}

func TestClickInvalidIDs(t *testing.T) {
	_, h := testHandler(t)
	rec, body := doGET(t, h, "/click?affiliate_id=abc&campaign_id=1&click_id=tok")
	if rec.Code != http.StatusBadRequest || body["error"] != "Invalid affiliate_id" {
		t.Fatalf("unexpected response: %d %v", rec.Code, body)
	}
}

func TestClickSuccess(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().
		LogClick(mock.Anything, port.LogClickReq{AffiliateID: 1, CampaignID: 2, Token: "abc123"}).
		Return(int64(7), nil)

	rec, body := doGET(t, h, "/click?affiliate_id=1&campaign_id=2&click_id=abc123")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["status"] != "success" || body["click_row_id"] != float64(7) {
		t.Fatalf("unexpected body: %v", body)
	}
}

// TestClickDBError checks that a failed write surfaces as a client error
// with the underlying detail attached, e.g. a foreign key violation when
// the affiliate does not exist.
func TestClickDBError(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().
		LogClick(mock.Anything, mock.AnythingOfType("port.LogClickReq")).
		Return(int64(0), errors.New(`violates foreign key constraint "clicks_affiliate_id_fkey"`))

	rec, body := doGET(t, h, "/click?affiliate_id=99&campaign_id=1&click_id=tok")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "Failed to log click" || body["detail"] == nil {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPostbackMissingParams(t *testing.T) {
	_, h := testHandler(t)
	rec, body := doGET(t, h, "/postback?affiliate_id=1&click_id=abc&amount=50")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "Missing affiliate_id, click_id, amount, or currency" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestPostbackInvalidAmount(t *testing.T) {
	_, h := testHandler(t)
	rec, body := doGET(t, h, "/postback?affiliate_id=1&click_id=abc&amount=fifty&currency=USD")
	if rec.Code != http.StatusBadRequest || body["error"] != "Invalid amount" {
		t.Fatalf("unexpected response: %d %v", rec.Code, body)
	}
}

func TestPostbackNoMatchingClick(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().
		RecordPostback(mock.Anything, mock.AnythingOfType("port.PostbackReq")).
		Return(port.ErrClickNotFound)

	rec, body := doGET(t, h, "/postback?affiliate_id=1&click_id=ghost&amount=50&currency=USD")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["status"] != "error" || body["message"] != "No matching click found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPostbackSuccess(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().
		RecordPostback(mock.Anything, port.PostbackReq{AffiliateID: 1, Token: "abc123", Amount: "50", Currency: "USD"}).
		Return(nil)

	rec, body := doGET(t, h, "/postback?affiliate_id=1&click_id=abc123&amount=50&currency=USD")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["status"] != "success" || body["message"] != "Conversion tracked" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestListAffiliates(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().
		ListAffiliates(mock.Anything).
		Return([]domain.Affiliate{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Blue Peak"}}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/affiliates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var affiliates []domain.Affiliate
	if err := json.Unmarshal(rec.Body.Bytes(), &affiliates); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(affiliates) != 2 || affiliates[0].ID != 1 {
		t.Fatalf("unexpected affiliates: %+v", affiliates)
	}
}

func TestListAffiliatesDBError(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().ListAffiliates(mock.Anything).Return(nil, errors.New("connection refused"))

	rec, body := doGET(t, h, "/affiliates")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// internal detail must not leak into the response
	if body["error"] != "Internal server error" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestOverviewInvalidID(t *testing.T) {
	_, h := testHandler(t)
	for _, target := range []string{"/affiliates/abc/overview", "/affiliates/0/overview", "/affiliates/-3/overview"} {
		rec, body := doGET(t, h, target)
		if rec.Code != http.StatusBadRequest || body["error"] != "Invalid affiliate id" {
			t.Fatalf("%s: unexpected response: %d %v", target, rec.Code, body)
		}
	}
}

func TestOverviewNotFound(t *testing.T) {
	svc, h := testHandler(t)
	svc.EXPECT().AffiliateOverview(mock.Anything, int64(999)).Return(nil, port.ErrAffiliateNotFound)

	rec, body := doGET(t, h, "/affiliates/999/overview")
	if rec.Code != http.StatusNotFound || body["error"] != "Affiliate not found" {
		t.Fatalf("unexpected response: %d %v", rec.Code, body)
	}
}

// TestTrackingScenario runs the click -> postback -> overview flow through
// the real usecase with a mocked repository: log a click, fire a postback
// for its token, then check the overview shows both.
func TestTrackingScenario(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	svc := usecase.NewTrackingUseCase(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := configs.HTTP{CORSOrigins: []string{"*"}, RequestTimeout: 5 * time.Second}
	h := NewHandler(svc, logger, cfg, nil).Router()

	now := time.Now()
	repo.EXPECT().
		UpsertClick(mock.Anything, int64(1), int64(1), "abc123").
		Return(int64(1), nil)
	repo.EXPECT().
		FindClickByToken(mock.Anything, int64(1), "abc123").
		Return(&domain.Click{ID: 1, AffiliateID: 1, CampaignID: 1, Token: "abc123", CreatedAt: now}, nil)
	repo.EXPECT().
		CreateConversion(mock.Anything, int64(1), "50", "USD").
		Return(nil)
	repo.EXPECT().
		GetAffiliate(mock.Anything, int64(1)).
		Return(&domain.Affiliate{ID: 1, Name: "Acme"}, nil)
	repo.EXPECT().
		ListClicksByAffiliate(mock.Anything, int64(1)).
		Return([]port.ClickRow{{ID: 1, AffiliateID: 1, CampaignID: 1, CampaignName: "Summer", Token: "abc123", CreatedAt: now}}, nil)
	repo.EXPECT().
		ListConversionsByAffiliate(mock.Anything, int64(1)).
		Return([]port.ConversionRow{{ID: 1, ClickRowID: 1, Token: "abc123", CampaignID: 1, CampaignName: "Summer", Amount: "50.00", Currency: "USD", CreatedAt: now}}, nil)

	rec, body := doGET(t, h, "/click?affiliate_id=1&campaign_id=1&click_id=abc123")
	if rec.Code != http.StatusOK || body["click_row_id"] != float64(1) {
		t.Fatalf("click failed: %d %v", rec.Code, body)
	}

	rec, body = doGET(t, h, "/postback?affiliate_id=1&click_id=abc123&amount=50&currency=USD")
	if rec.Code != http.StatusOK || body["status"] != "success" {
		t.Fatalf("postback failed: %d %v", rec.Code, body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/affiliates/1/overview", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("overview failed: %d %s", rec.Code, rec.Body.String())
	}
	var overview port.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("invalid overview JSON: %v", err)
	}
	if len(overview.Clicks) != 1 || overview.Clicks[0].Token != "abc123" {
		t.Fatalf("unexpected clicks: %+v", overview.Clicks)
	}
	if len(overview.Conversions) != 1 || overview.Conversions[0].Amount != "50.00" || overview.Conversions[0].Currency != "USD" {
		t.Fatalf("unexpected conversions: %+v", overview.Conversions)
	}
}
