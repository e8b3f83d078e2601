package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data so the dashboard has something to show on a fresh
// database: three affiliates, three campaigns and a couple of clicks per
// affiliate with generated tokens. Every insert is ON CONFLICT DO NOTHING,
// so re-running the seeder never duplicates rows with explicit ids and
// clicks stay unique per (affiliate, campaign, token).
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	affiliates := []string{"Acme Media", "Blue Peak Partners", "Clickwise"}
	for i, name := range affiliates {
		_, err := db.Exec(ctx, `INSERT INTO affiliates (id, name)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, i+1, name)
		if err != nil {
			return err
		}
	}

	campaigns := []string{"Summer Sale", "Back to School", "Holiday Push"}
	for i, name := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, i+1, name)
		if err != nil {
			return err
		}
	}

	// Keep the serial counters ahead of the explicit ids above.
	for _, table := range []string{"affiliates", "campaigns"} {
		_, err := db.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT max(id) FROM %s))`, table, table))
		if err != nil {
			return err
		}
	}

	for affiliateID := 1; affiliateID <= len(affiliates); affiliateID++ {
		for campaignID := 1; campaignID <= 2; campaignID++ {
			token := uuid.NewString()
			_, err := db.Exec(ctx, `INSERT INTO clicks (affiliate_id, campaign_id, click_id)
VALUES ($1, $2, $3) ON CONFLICT (affiliate_id, campaign_id, click_id) DO NOTHING`,
				affiliateID, campaignID, token)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
