package domain

import "time"

// AFKStats tracks passive earnings for one user (1:1 with users, created
// lazily on first claim or first afk upgrade purchase).
type AFKStats struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	LastAFKCheck  time.Time `db:"last_afk_check" json:"last_afk_check"`
	AFKEarnings   float64   `db:"afk_earnings" json:"afk_earnings"`
	AFKMultiplier float64   `db:"afk_multiplier" json:"afk_multiplier"`
}
