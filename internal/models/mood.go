package models

// MoodEntry records a single day's mood score (0..10) for one owner.
// At most one row exists per (owner_id, day); writes are upserts, unlike
// the habit completion toggle path.
type MoodEntry struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Day     string `json:"day"` // YYYY-MM-DD format
	Mood    int    `json:"mood"`
	Note    string `json:"note"`
}
