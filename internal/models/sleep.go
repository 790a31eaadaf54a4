package models

import "time"

// SleepInterval is one logged stretch of sleep with timezone-aware bounds.
// End > Start is a store-level constraint; readers may assume it.
type SleepInterval struct {
	ID      string    `json:"id"`
	OwnerID string    `json:"owner_id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Duration returns the logged length of the interval.
func (s SleepInterval) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
