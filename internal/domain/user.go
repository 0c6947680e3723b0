package domain

import "time"

type User struct {
	ID                int64      `db:"id" json:"id"`
	Username          string     `db:"username" json:"username"`
	PasswordHash      string     `db:"password_hash" json:"-"`
	Balance           float64    `db:"balance" json:"balance"`
	Experience        int        `db:"experience" json:"experience"`
	Level             int        `db:"level" json:"level"`
	LastTap           *time.Time `db:"last_tap" json:"last_tap,omitempty"`
	TotalHelp         float64    `db:"total_help" json:"total_help"`
	CompletedProjects int        `db:"completed_projects" json:"completed_projects"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}
