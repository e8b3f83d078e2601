package port

import (
	"context"

	"affiliate-tracker/internal/core/domain"
)

// TrackingUseCase defines the business operations exposed by the tracker.
// This interface represents the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type TrackingUseCase interface {
	// ListAffiliates returns all affiliates ordered by id.
	ListAffiliates(ctx context.Context) ([]domain.Affiliate, error)

	// ListCampaigns returns all campaigns ordered by id.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// LogClick records a click for the given affiliate, campaign and
	// external token and returns the click row id. Repeated calls with
	// identical parameters resolve to the same row — the operation is
	// idempotent by the (affiliate, campaign, token) unique constraint.
	LogClick(ctx context.Context, req LogClickReq) (int64, error)

	// RecordPostback matches a conversion notification to the most recent
	// click for (affiliate, token) and records a conversion against it.
	// Returns ErrClickNotFound when no click matches; there is no
	// idempotency key, so repeated postbacks record repeated conversions.
	RecordPostback(ctx context.Context, req PostbackReq) error

	// AffiliateOverview returns the affiliate together with its clicks and
	// conversions, both newest first. Returns ErrAffiliateNotFound when the
	// id does not exist.
	AffiliateOverview(ctx context.Context, affiliateID int64) (*Overview, error)
}

// LogClickReq carries the validated inputs of a click logging request. The
// HTTP layer coerces its query parameters into this struct before any
// handler logic runs.
type LogClickReq struct {
	AffiliateID int64
	CampaignID  int64
	Token       string
}

// PostbackReq carries the validated inputs of a postback. Amount is decimal
// text already checked to be numeric; it is stored without rounding.
type PostbackReq struct {
	AffiliateID int64
	Token       string
	Amount      string
	Currency    string
}

// Overview is the read-only aggregate returned for a single affiliate: the
// affiliate record plus its clicks and conversions. It is composed from
// three queries per request, never cached or materialized.
type Overview struct {
	Affiliate   domain.Affiliate `json:"affiliate"`
	Clicks      []ClickRow       `json:"clicks"`
	Conversions []ConversionRow  `json:"conversions"`
}
