package usecase

import (
	"context"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// TrackingUseCase provides the business logic for click logging, postback
// matching and the affiliate overview. It orchestrates the repository to
// implement the TrackingUseCase interface; it holds no state of its own.
type TrackingUseCase struct {
	repo port.TrackingRepository
}

// NewTrackingUseCase creates a new usecase with the provided repository.
func NewTrackingUseCase(repo port.TrackingRepository) *TrackingUseCase {
	return &TrackingUseCase{repo: repo}
}

// ListAffiliates returns all affiliates ordered by id.
func (u *TrackingUseCase) ListAffiliates(ctx context.Context) ([]domain.Affiliate, error) {
	return u.repo.ListAffiliates(ctx)
}

// ListCampaigns returns all campaigns ordered by id.
func (u *TrackingUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// LogClick records a click and returns its row id. The upsert makes the
// operation idempotent: repeated calls with identical parameters resolve to
// the same row.
func (u *TrackingUseCase) LogClick(ctx context.Context, req port.LogClickReq) (int64, error) {
	return u.repo.UpsertClick(ctx, req.AffiliateID, req.CampaignID, req.Token)
}

// RecordPostback matches the postback to the most recent click for
// (affiliate, token) and records a conversion against it. Returns
// port.ErrClickNotFound when no click matches; a postback never creates a
// click. There is no idempotency key, so identical postbacks produce
// separate conversion rows.
func (u *TrackingUseCase) RecordPostback(ctx context.Context, req port.PostbackReq) error {
	click, err := u.repo.FindClickByToken(ctx, req.AffiliateID, req.Token)
	if err != nil {
		return err
	}
	if click == nil {
		return port.ErrClickNotFound
	}
	return u.repo.CreateConversion(ctx, click.ID, req.Amount, req.Currency)
}

// AffiliateOverview composes the affiliate record with its clicks and
// conversions, both newest first. Returns port.ErrAffiliateNotFound when
// the id does not exist.
func (u *TrackingUseCase) AffiliateOverview(ctx context.Context, affiliateID int64) (*port.Overview, error) {
	affiliate, err := u.repo.GetAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, port.ErrAffiliateNotFound
	}

	clicks, err := u.repo.ListClicksByAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	conversions, err := u.repo.ListConversionsByAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}

	if clicks == nil {
		clicks = []port.ClickRow{}
	}
	if conversions == nil {
		conversions = []port.ConversionRow{}
	}
	return &port.Overview{
		Affiliate:   *affiliate,
		Clicks:      clicks,
		Conversions: conversions,
	}, nil
}
