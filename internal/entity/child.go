package entity

import "time"

// DateLayout is the wire and storage format for calendar dates (birthday, read date).
const DateLayout = "2006-01-02"

// Child is a child profile owned by a parent user.
type Child struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Birthday  string    `json:"birthday"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChildInput carries the fields a parent may set on a child.
type ChildInput struct {
	Name     string `json:"name" validate:"required"`
	Birthday string `json:"birthday" validate:"required"`
}

// AgeAt returns the child's age in whole years at t, or 0 when the birthday
// cannot be parsed.
func (c Child) AgeAt(t time.Time) int {
	born, err := time.Parse(DateLayout, c.Birthday)
	if err != nil {
		return 0
	}
	age := t.Year() - born.Year()
	if t.Month() < born.Month() || (t.Month() == born.Month() && t.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
