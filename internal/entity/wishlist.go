package entity

import "time"

// WishlistEntry is a denormalized copy of a catalog result a parent wants
// a child to read. It does not reference a Book.
type WishlistEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChildID   string    `json:"child_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WishlistInput struct {
	ChildID  string
	Title    string
	Author   string
	ImageURL string
	Rating   *float64
}
