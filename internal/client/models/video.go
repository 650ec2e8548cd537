package models

import "time"

// Video is a platform video as returned by the /videos endpoints.
type Video struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Views       int64     `json:"views"`
	FishCount   int64     `json:"fishCount"`
	Uploader    *User     `json:"uploader,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VideoUpdate holds the optional fields of PATCH /videos/{id}.
type VideoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// FeedResult is the payload of POST /videos/{id}/feed: the video's fish
// count and the caller's balance after the reward.
type FeedResult struct {
	FishCount   int64 `json:"fishCount"`
	FishBalance int64 `json:"fishBalance"`
}

// VideoPage is one page of a paginated video listing.
type VideoPage struct {
	Items []*Video `json:"items"`
	Page  int      `json:"page"`
	Size  int      `json:"size"`
	Total int64    `json:"total"`
}

// UserPage is one page of a paginated user search.
type UserPage struct {
	Items []*User `json:"items"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Total int64   `json:"total"`
}
