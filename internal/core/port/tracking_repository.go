package port

import (
	"context"
	"errors"
	"time"

	"affiliate-tracker/internal/core/domain"
)

var (
	// ErrAffiliateNotFound is returned when an overview is requested for an
	// affiliate id that does not exist.
	ErrAffiliateNotFound = errors.New("affiliate not found")
	// ErrClickNotFound is returned when a postback references a click that
	// was never logged. A postback can never create a click.
	ErrClickNotFound = errors.New("no matching click found")
)

// TrackingRepository defines the persistence layer for the tracker. It is an
// outbound port in hexagonal architecture. The store owns all entity state;
// nothing is cached in process.
type TrackingRepository interface {
	// ListAffiliates returns all affiliates ordered by id ascending.
	ListAffiliates(ctx context.Context) ([]domain.Affiliate, error)
	// ListCampaigns returns all campaigns ordered by id ascending.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// UpsertClick inserts a click row for the given triple and returns its
	// row id. When a row with the same (affiliate, campaign, token) triple
	// already exists the insert is a no-op and the existing row's id is
	// returned, making the operation idempotent. The database's unique
	// constraint arbitrates concurrent duplicates.
	UpsertClick(ctx context.Context, affiliateID, campaignID int64, token string) (int64, error)

	// FindClickByToken returns the most recent click matching the affiliate
	// and external token, or nil when none exists.
	FindClickByToken(ctx context.Context, affiliateID int64, token string) (*domain.Click, error)
	// CreateConversion records a conversion against a click row id. Repeated
	// postbacks for one click produce separate rows.
	CreateConversion(ctx context.Context, clickRowID int64, amount, currency string) error

	// GetAffiliate returns an affiliate by id, or nil when none exists.
	GetAffiliate(ctx context.Context, id int64) (*domain.Affiliate, error)
	// ListClicksByAffiliate returns the affiliate's clicks joined with their
	// campaign name, newest first.
	ListClicksByAffiliate(ctx context.Context, affiliateID int64) ([]ClickRow, error)
	// ListConversionsByAffiliate returns the affiliate's conversions joined
	// with click token and campaign info, newest first.
	ListConversionsByAffiliate(ctx context.Context, affiliateID int64) ([]ConversionRow, error)
}

// ClickRow is a click joined with its campaign name, as rendered in the
// affiliate overview.
type ClickRow struct {
	ID           int64     `json:"id"`
	AffiliateID  int64     `json:"affiliate_id"`
	CampaignID   int64     `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Token        string    `json:"click_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ConversionRow is a conversion joined with its click token and campaign
// info, as rendered in the affiliate overview.
type ConversionRow struct {
	ID           int64     `json:"id"`
	ClickRowID   int64     `json:"click_row_id"`
	Token        string    `json:"click_id"`
	CampaignID   int64     `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}
