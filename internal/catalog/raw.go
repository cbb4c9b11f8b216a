package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Response is the body returned by the catalog proxy.
type Response struct {
	Items     []RawItem `json:"items"`
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
	Count     int       `json:"count"`
}

// RawItem is one catalog entry as the proxy forwards it. Any field may be
// absent. Entries arrive either bare or wrapped as {"Item": {...}}.
type RawItem struct {
	ID             string    `json:"id,omitempty"`
	Title          string    `json:"title,omitempty"`
	Author         string    `json:"author,omitempty"`
	LargeImageURL  string    `json:"largeImageUrl,omitempty"`
	MediumImageURL string    `json:"mediumImageUrl,omitempty"`
	PublisherName  string    `json:"publisherName,omitempty"`
	ItemCaption    string    `json:"itemCaption,omitempty"`
	ISBN           string    `json:"isbn,omitempty"`
	ItemURL        string    `json:"itemUrl,omitempty"`
	ReviewAverage  flexFloat `json:"reviewAverage,omitempty"`
	ReviewCount    flexInt   `json:"reviewCount,omitempty"`
	SalesDate      string    `json:"salesDate,omitempty"`
}

type rawItemFields RawItem

func (r *RawItem) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Item *rawItemFields `json:"Item"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Item != nil {
		*r = RawItem(*wrapped.Item)
		return nil
	}
	var bare rawItemFields
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	*r = RawItem(bare)
	return nil
}

// flexFloat accepts a JSON number, a numeric string, or null.
type flexFloat struct {
	Value float64
	Valid bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*f = flexFloat{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = flexFloat{}
		return nil
	}
	*f = flexFloat{Value: v, Valid: true}
	return nil
}

func (f flexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f.Value, 'f', -1, 64)), nil
}

// flexInt accepts a JSON number, a numeric string, or null.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = flexInt(f.Value)
	return nil
}
