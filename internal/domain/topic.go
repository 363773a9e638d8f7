package domain

// Topic is a named category tag for articles. Topics are read-only via the API.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
