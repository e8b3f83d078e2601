package domain

import "time"

// Conversion is the recorded outcome of a postback matched to a click.
// Amount is kept as decimal text end to end; the tracker never does
// arithmetic on it and no currency normalisation is applied. Multiple
// conversions may reference the same click.
type Conversion struct {
	ID         int64     `json:"id"`
	ClickRowID int64     `json:"click_row_id"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}
