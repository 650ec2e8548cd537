package models

import "time"

// Comment is a comment on a video.
type Comment struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"videoId"`
	Content   string    `json:"content"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
