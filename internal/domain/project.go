package domain

import "time"

// ProjectStatus represents the funding state of a charity project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ID            int64         `db:"id" json:"id"`
	Title         string        `db:"title" json:"title"`
	Description   string        `db:"description" json:"description"`
	TargetAmount  float64       `db:"target_amount" json:"target_amount"`
	CurrentAmount float64       `db:"current_amount" json:"current_amount"`
	Country       string        `db:"country" json:"country"`
	Category      string        `db:"category" json:"category"`
	Image         string        `db:"image" json:"image"`
	Status        ProjectStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// Progress returns funding progress as a percentage. Not capped at 100:
// an overshooting donation pushes it past the target.
func (p *Project) Progress() float64 {
	if p.TargetAmount <= 0 {
		return 0
	}
	return p.CurrentAmount / p.TargetAmount * 100
}
