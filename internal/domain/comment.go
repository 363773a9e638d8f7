package domain

import (
	"time"
)

// Comment is a user's comment on an article.
type Comment struct {
	ID        int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment carries the fields required to post a comment on an article.
// The author travels as "username" in request bodies. The body is stored as
// typed; escaping is left to whoever renders it.
type NewComment struct {
	ArticleID int    `json:"-"`
	Author    string `json:"username" validate:"required,max=100"`
	Body      string `json:"body"     validate:"required"`
}

// Validate checks the target article id and the required text fields.
// An invalid article id fails with ErrInvalidQuery, anything else with ErrInvalidBody.
func (c *NewComment) Validate() error {
	if err := ValidateID("article_id", c.ArticleID); err != nil {
		return err
	}
	return validateInput(c)
}
