package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
	"affiliate-tracker/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestLogClickIdempotent ensures repeated clicks with the same triple
// resolve to the same row id.
func TestLogClickIdempotent(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)

	repo.EXPECT().
		UpsertClick(mock.Anything, int64(1), int64(1), "abc123").
		Return(int64(42), nil).
		Twice()

	svc := NewTrackingUseCase(repo)
	req := port.LogClickReq{AffiliateID: 1, CampaignID: 1, Token: "abc123"}

	first, err := svc.LogClick(context.Background(), req)
	if err != nil {
		t.Fatalf("LogClick error: %v", err)
	}
	second, err := svc.LogClick(context.Background(), req)
	if err != nil {
		t.Fatalf("LogClick error: %v", err)
	}
	if first != second {
		t.Fatalf("expected same row id, got %d and %d", first, second)
	}
}

// TestRecordPostbackNoClick ensures a postback with no matching click fails
// with ErrClickNotFound and records nothing. CreateConversion has no
// expectation, so any call to it fails the test.
func TestRecordPostbackNoClick(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)

	repo.EXPECT().
		FindClickByToken(mock.Anything, int64(1), "unknown").
		Return(nil, nil)

	svc := NewTrackingUseCase(repo)
	err := svc.RecordPostback(context.Background(), port.PostbackReq{
		AffiliateID: 1, Token: "unknown", Amount: "50", Currency: "USD",
	})
	if !errors.Is(err, port.ErrClickNotFound) {
		t.Fatalf("expected ErrClickNotFound, got %v", err)
	}
}

// TestRecordPostbackMultiplicity ensures two postbacks for the same click
// each record a conversion: there is no dedup.
func TestRecordPostbackMultiplicity(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)

	click := &domain.Click{ID: 7, AffiliateID: 1, CampaignID: 2, Token: "abc123"}
	repo.EXPECT().
		FindClickByToken(mock.Anything, int64(1), "abc123").
		Return(click, nil).
		Twice()
	repo.EXPECT().
		CreateConversion(mock.Anything, int64(7), "50", "USD").
		Return(nil).
		Once()
	repo.EXPECT().
		CreateConversion(mock.Anything, int64(7), "75.25", "USD").
		Return(nil).
		Once()

	svc := NewTrackingUseCase(repo)
	for _, amount := range []string{"50", "75.25"} {
		err := svc.RecordPostback(context.Background(), port.PostbackReq{
			AffiliateID: 1, Token: "abc123", Amount: amount, Currency: "USD",
		})
		if err != nil {
			t.Fatalf("RecordPostback(%s) error: %v", amount, err)
		}
	}
}

// TestAffiliateOverview ensures the aggregate composes affiliate, clicks and
// conversions, and that empty slices come back instead of nil.
func TestAffiliateOverview(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)

	now := time.Now()
	clicks := []port.ClickRow{
		{ID: 2, AffiliateID: 1, CampaignID: 1, CampaignName: "Summer", Token: "later", CreatedAt: now},
		{ID: 1, AffiliateID: 1, CampaignID: 1, CampaignName: "Summer", Token: "earlier", CreatedAt: now.Add(-time.Hour)},
	}
	repo.EXPECT().GetAffiliate(mock.Anything, int64(1)).Return(&domain.Affiliate{ID: 1, Name: "Acme"}, nil)
	repo.EXPECT().ListClicksByAffiliate(mock.Anything, int64(1)).Return(clicks, nil)
	repo.EXPECT().ListConversionsByAffiliate(mock.Anything, int64(1)).Return(nil, nil)

	svc := NewTrackingUseCase(repo)
	overview, err := svc.AffiliateOverview(context.Background(), 1)
	if err != nil {
		t.Fatalf("AffiliateOverview error: %v", err)
	}
	if overview.Affiliate.Name != "Acme" {
		t.Fatalf("unexpected affiliate: %+v", overview.Affiliate)
	}
	if len(overview.Clicks) != 2 || overview.Clicks[0].Token != "later" {
		t.Fatalf("unexpected clicks: %+v", overview.Clicks)
	}
	if overview.Conversions == nil || len(overview.Conversions) != 0 {
		t.Fatalf("expected empty conversions slice, got %+v", overview.Conversions)
	}
}

// TestAffiliateOverviewNotFound ensures an unknown affiliate id maps to
// ErrAffiliateNotFound without touching the click or conversion queries.
func TestAffiliateOverviewNotFound(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)

	repo.EXPECT().GetAffiliate(mock.Anything, int64(999)).Return(nil, nil)

	svc := NewTrackingUseCase(repo)
	_, err := svc.AffiliateOverview(context.Background(), 999)
	if !errors.Is(err, port.ErrAffiliateNotFound) {
		t.Fatalf("expected ErrAffiliateNotFound, got %v", err)
	}
}
