package store

import (
	"strconv"
	"strings"

	"github.com/phrazzld/nc-news-api/internal/domain"
)

// ArticleSort enumerates the columns an article listing may be sorted by.
// Only values produced by ParseArticleSort ever reach the SQL layer.
type ArticleSort int

// Supported article sort columns.
const (
	SortByCreatedAt ArticleSort = iota
	SortByID
	SortByTitle
	SortByTopic
	SortByAuthor
	SortByVotes
	SortByCommentCount
)

var articleSortNames = map[string]ArticleSort{
	"id":            SortByID,
	"title":         SortByTitle,
	"topic":         SortByTopic,
	"author":        SortByAuthor,
	"created_at":    SortByCreatedAt,
	"votes":         SortByVotes,
	"comment_count": SortByCommentCount,
}

// String returns the query-string name of the sort column.
func (s ArticleSort) String() string {
	for name, v := range articleSortNames {
		if v == s {
			return name
		}
	}
	return "unknown"
}

// ParseArticleSort maps a sort_by query value onto the whitelist.
// An empty value selects created_at. Unknown values fail with ErrUnsupportedSort.
func ParseArticleSort(raw string) (ArticleSort, error) {
	if raw == "" {
		return SortByCreatedAt, nil
	}
	s, ok := articleSortNames[raw]
	if !ok {
		return 0, ErrUnsupportedSort
	}
	return s, nil
}

// SortOrder is the direction of a listing sort.
type SortOrder int

// Supported sort directions. Descending is the zero value and the default.
const (
	Descending SortOrder = iota
	Ascending
)

// String returns the canonical short name of the direction.
func (o SortOrder) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// ParseSortOrder maps an order query value onto the whitelist, ignoring case.
// An empty value selects Descending. Unknown values fail with ErrUnsupportedOrder.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(raw) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	default:
		return 0, ErrUnsupportedOrder
	}
}

// Pagination defaults and bounds.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Page selects one window of a listing.
type Page struct {
	Limit  int
	Number int
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{Limit: DefaultPageLimit, Number: 1}
}

// Offset returns the number of rows to skip: (page - 1) * limit.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Validate checks that both the limit and page number are usable.
func (p Page) Validate() error {
	if p.Limit <= 0 || p.Limit > MaxPageLimit {
		return domain.NewValidationError("limit", "must be between 1 and 100", domain.ErrInvalidQuery)
	}
	if p.Number <= 0 {
		return domain.NewValidationError("page", "must be positive", domain.ErrInvalidQuery)
	}
	return nil
}

// ParsePage builds a Page from raw limit and page query values.
// Absent values take their defaults; anything else must be a positive integer.
func ParsePage(rawLimit, rawPage string) (Page, error) {
	page := DefaultPage()

	if rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return Page{}, domain.NewValidationError("limit", "must be an integer", domain.ErrInvalidQuery)
		}
		page.Limit = limit
	}

	if rawPage != "" {
		number, err := strconv.Atoi(rawPage)
		if err != nil {
			return Page{}, domain.NewValidationError("page", "must be an integer", domain.ErrInvalidQuery)
		}
		page.Number = number
	}

	if err := page.Validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}
