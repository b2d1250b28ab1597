package domain

import "time"

// Pet is the time-gated auto-actor. ActivePet is empty when no pet is out.
type Pet struct {
	ActivePet    string    `json:"active_pet,omitempty"`
	LastFedAt    time.Time `json:"last_fed_at"`
	LastWorkedAt time.Time `json:"last_worked_at"`
}

// IsActive reports whether a pet is currently deployed.
func (p *Pet) IsActive() bool {
	return p.ActivePet != ""
}

// IsWorking reports whether the pet is still fed well enough to work at now.
func (p *Pet) IsWorking(now time.Time, workDuration time.Duration) bool {
	return p.IsActive() && now.Sub(p.LastFedAt) < workDuration
}
