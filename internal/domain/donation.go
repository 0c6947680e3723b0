package domain

import "time"

// Donation is an immutable record of a single help action.
type Donation struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ProjectID int64     `db:"project_id" json:"project_id"`
	Amount    float64   `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
