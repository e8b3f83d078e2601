package domain

// Campaign represents a promotional effort clicks are attributed to.
// Campaigns are independent of affiliates and share their lifecycle:
// seeded out-of-band, never mutated through the API.
type Campaign struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
