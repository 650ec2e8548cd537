package models

import "time"

// Notification is a server-created notification. ID is stable and unique
// within a user's list. Only IsRead is ever mutated client-side.
type Notification struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	IsRead    bool           `json:"isRead"`
	CreatedAt time.Time      `json:"createdAt"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
