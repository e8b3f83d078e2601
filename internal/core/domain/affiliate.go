package domain

// Affiliate is a partner whose referral traffic is tracked. Affiliates are
// created out-of-band (seed or admin tooling) and are read-only for the API.
type Affiliate struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
