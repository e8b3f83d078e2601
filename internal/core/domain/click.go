package domain

import "time"

// Click is a recorded use of an affiliate's referral link. The caller
// supplies the external token; the triple (affiliate, campaign, token) is
// unique, so a click row is logically identified by who generated it, for
// which campaign, and under which token. Rows are insert-only.
type Click struct {
	ID          int64     `json:"id"`
	AffiliateID int64     `json:"affiliate_id"`
	CampaignID  int64     `json:"campaign_id"`
	Token       string    `json:"click_id"`
	CreatedAt   time.Time `json:"created_at"`
}
