package entity

import "time"

// Book is a catalog entry a user has referenced at least once.
type Book struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookInput struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
}
