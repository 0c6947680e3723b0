package ws

// DonationEvent is pushed to the feed on every successful help action.
type DonationEvent struct {
	Type      string  `json:"type"` // "donation"
	ProjectID int64   `json:"project_id"`
	Project   string  `json:"project"`
	Amount    float64 `json:"amount"`
	Progress  float64 `json:"progress"`
}

// ProjectCompletedEvent is pushed once when a project reaches its target.
type ProjectCompletedEvent struct {
	Type      string `json:"type"` // "project_completed"
	ProjectID int64  `json:"project_id"`
	Project   string `json:"project"`
}
