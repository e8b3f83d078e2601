package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// TrackingRepository implements port.TrackingRepository using pgxpool for
// PostgreSQL. All state lives in the database; the struct only carries the
// injected pool.
type TrackingRepository struct {
	pool *pgxpool.Pool
}

// NewTrackingRepository returns a new repository instance.
func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{pool: pool}
}

// ListAffiliates returns all affiliates ordered by id.
func (r *TrackingRepository) ListAffiliates(ctx context.Context) ([]domain.Affiliate, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM affiliates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Affiliate, error) {
		var a domain.Affiliate
		err := row.Scan(&a.ID, &a.Name)
		return a, err
	})
}

// ListCampaigns returns all campaigns ordered by id.
func (r *TrackingRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

// UpsertClick inserts a click row and returns its id. The unique constraint
// on (affiliate_id, campaign_id, click_id) turns duplicate inserts into
// no-ops; in that case the existing row's id is looked up and returned, so
// every caller racing on the same triple resolves to the same row. The
// fallback SELECT runs as its own statement after the no-op insert has
// committed, which under read committed reliably observes the winner.
func (r *TrackingRepository) UpsertClick(ctx context.Context, affiliateID, campaignID int64, token string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO clicks (affiliate_id, campaign_id, click_id)
VALUES ($1, $2, $3)
ON CONFLICT (affiliate_id, campaign_id, click_id) DO NOTHING
RETURNING id`, affiliateID, campaignID, token).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	err = r.pool.QueryRow(ctx, `SELECT id FROM clicks
WHERE affiliate_id = $1 AND campaign_id = $2 AND click_id = $3`,
		affiliateID, campaignID, token).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// FindClickByToken returns the most recent click for (affiliate, token), or
// nil when none exists.
func (r *TrackingRepository) FindClickByToken(ctx context.Context, affiliateID int64, token string) (*domain.Click, error) {
	var c domain.Click
	err := r.pool.QueryRow(ctx, `SELECT id, affiliate_id, campaign_id, click_id, created_at
FROM clicks
WHERE affiliate_id = $1 AND click_id = $2
ORDER BY created_at DESC
LIMIT 1`, affiliateID, token).
		Scan(&c.ID, &c.AffiliateID, &c.CampaignID, &c.Token, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateConversion records a conversion for a click row. Amount arrives as
// decimal text and is cast by the database; there is no dedup, so repeated
// postbacks insert repeated rows.
func (r *TrackingRepository) CreateConversion(ctx context.Context, clickRowID int64, amount, currency string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO conversions (click_id, amount, currency)
VALUES ($1, $2::numeric, $3)`, clickRowID, amount, currency)
	return err
}

// GetAffiliate returns an affiliate by id, or nil when none exists.
func (r *TrackingRepository) GetAffiliate(ctx context.Context, id int64) (*domain.Affiliate, error) {
	var a domain.Affiliate
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM affiliates WHERE id = $1`, id).
		Scan(&a.ID, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListClicksByAffiliate returns the affiliate's clicks joined with their
// campaign name, newest first.
func (r *TrackingRepository) ListClicksByAffiliate(ctx context.Context, affiliateID int64) ([]port.ClickRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT c.id, c.affiliate_id, c.campaign_id, cp.name, c.click_id, c.created_at
FROM clicks c
JOIN campaigns cp ON cp.id = c.campaign_id
WHERE c.affiliate_id = $1
ORDER BY c.created_at DESC`, affiliateID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ClickRow, error) {
		var c port.ClickRow
		err := row.Scan(&c.ID, &c.AffiliateID, &c.CampaignID, &c.CampaignName, &c.Token, &c.CreatedAt)
		return c, err
	})
}

// ListConversionsByAffiliate returns the affiliate's conversions joined with
// click token and campaign info, newest first. Amount is selected as text so
// the decimal travels unrounded.
func (r *TrackingRepository) ListConversionsByAffiliate(ctx context.Context, affiliateID int64) ([]port.ConversionRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT v.id, v.click_id, c.click_id, c.campaign_id, cp.name, v.amount::text, v.currency, v.created_at
FROM conversions v
JOIN clicks c ON c.id = v.click_id
JOIN campaigns cp ON cp.id = c.campaign_id
WHERE c.affiliate_id = $1
ORDER BY v.created_at DESC`, affiliateID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ConversionRow, error) {
		var v port.ConversionRow
		err := row.Scan(&v.ID, &v.ClickRowID, &v.Token, &v.CampaignID, &v.CampaignName, &v.Amount, &v.Currency, &v.CreatedAt)
		return v, err
	})
}
