package entity

// CatalogResult is one normalized item from an external catalog search.
// It is never persisted as-is.
type CatalogResult struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	ImageURL      string   `json:"image_url,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	Description   string   `json:"description,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	ItemURL       string   `json:"item_url,omitempty"`
	SalesDate     string   `json:"sales_date,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	ReviewCount   int      `json:"review_count,omitempty"`
}

// WishlistInput copies the displayable fields into a wishlist entry for childID.
func (c CatalogResult) WishlistInput(childID string) WishlistInput {
	return WishlistInput{
		ChildID:  childID,
		Title:    c.Title,
		Author:   c.Author,
		ImageURL: c.ImageURL,
		Rating:   c.AverageRating,
	}
}
