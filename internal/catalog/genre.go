package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a search value is interpreted.
type Mode string

const (
	ModeAge      Mode = "age"
	ModeCategory Mode = "category"
	ModeAuthor   Mode = "author"
	ModeKeyword  Mode = "keyword"
)

// DefaultGenreID is the picture book genre used by free-text searches.
const DefaultGenreID = "001003001"

var (
	// ErrCriteriaRequired is returned when no mode or value was chosen.
	ErrCriteriaRequired = errors.New("search criteria required")
	// ErrUnknownOption is returned for an age or category outside the table.
	ErrUnknownOption = errors.New("unknown search option")
)

type genre struct {
	id     string
	filter string
}

var ageGenres = map[string]genre{
	"0歳":     {id: "001003001", filter: "あかちゃん"},
	"1歳":     {id: "001003001", filter: "1さい"},
	"2歳":     {id: "001003001", filter: "2さい"},
	"3歳":     {id: "001003001", filter: "3さい"},
	"4歳":     {id: "001003001", filter: "4さい"},
	"5歳":     {id: "001003001", filter: "5さい"},
	"小学校低学年": {id: "001003002", filter: "低学年"},
}

var categoryGenres = map[string]genre{
	"えほん":  {id: "001003001", filter: "えほん"},
	"ずかん":  {id: "001003003", filter: "ずかん"},
	"かがく":  {id: "001003003", filter: "かがく"},
	"ことば":  {id: "001003001", filter: "ことば"},
	"きもち":  {id: "001003001", filter: "きもち"},
	"きせつ":  {id: "001003001", filter: "きせつ"},
	"いきもの": {id: "001003003", filter: "いきもの"},
	"あそび":  {id: "001003001", filter: "あそび"},
	"シリーズ": {id: "001003001", filter: "シリーズ"},
	"しぜん":  {id: "001003003", filter: "しぜん"},
}

// AgeOptions and CategoryOptions list the table keys in display order.
var (
	AgeOptions      = []string{"0歳", "1歳", "2歳", "3歳", "4歳", "5歳", "小学校低学年"}
	CategoryOptions = []string{"えほん", "ずかん", "かがく", "ことば", "きもち", "きせつ", "いきもの", "あそび", "シリーズ", "しぜん"}
)

// Criteria is what the user picked on the search form.
type Criteria struct {
	Mode  Mode
	Value string
}

// Params are the resolved proxy query parameters.
type Params struct {
	GenreID string
	Title   string
	Keyword string
	Page    int
}

// Resolve maps criteria to proxy parameters for page 1. Age and category
// searches filter by title, author and keyword searches by keyword.
func Resolve(c Criteria) (Params, error) {
	value := strings.TrimSpace(c.Value)
	if c.Mode == "" || value == "" {
		return Params{}, ErrCriteriaRequired
	}
	switch c.Mode {
	case ModeAge:
		return fromTable(ageGenres, value)
	case ModeCategory:
		return fromTable(categoryGenres, value)
	case ModeAuthor, ModeKeyword:
		return Params{GenreID: DefaultGenreID, Keyword: value, Page: 1}, nil
	default:
		return Params{}, fmt.Errorf("%w: mode %q", ErrUnknownOption, c.Mode)
	}
}

func fromTable(table map[string]genre, value string) (Params, error) {
	g, ok := table[value]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownOption, value)
	}
	return Params{GenreID: g.id, Title: g.filter, Page: 1}, nil
}
