package types

import "time"

// BoardItem is one entry on the public live board of available food.
// Urgency here is the board's own lowercase high/medium/low badge, distinct
// from the request triage levels.
type BoardItem struct {
	ID            string    `db:"id"`
	DonorName     string    `db:"donor_name"`
	Location      string    `db:"location"`
	Distance      string    `db:"distance"`
	FoodType      string    `db:"food_type"`
	Quantity      string    `db:"quantity"`
	TimeLeft      string    `db:"time_left"`
	Urgency       string    `db:"urgency"`
	Description   string    `db:"description"`
	ContactNumber string    `db:"contact_number"`
	Verified      bool      `db:"verified"`
	CreatedAt     time.Time `db:"created_at"`
}
