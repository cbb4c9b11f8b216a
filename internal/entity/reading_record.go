package entity

import "time"

// ReadingRecord is one child's reading of one book.
type ReadingRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChildID   string    `json:"child_id"`
	BookID    string    `json:"book_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	ReadDate  string    `json:"read_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Book is populated from the joined books row on fetch.
	Book BookRef `json:"book"`
}

// BookRef is the subset of Book shown alongside a record.
type BookRef struct {
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type ReadingRecordInput struct {
	ChildID  string `json:"child_id"`
	BookID   string `json:"book_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Review   string `json:"review"`
	ReadDate string `json:"read_date" validate:"required"`
}
