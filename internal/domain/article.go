package domain

import (
	"time"
)

// DefaultArticleImageURL is used when a new article is posted without an image.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// ArticleSummary is the shape of an article in listings. It omits the body.
type ArticleSummary struct {
	ID            int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// Article is a full article including its body.
// CommentCount is derived from the comments table on every read.
type Article struct {
	ArticleSummary
	Body string `json:"body"`
}

// NewArticle carries the fields required to publish an article.
type NewArticle struct {
	Author        string `json:"author"          validate:"required,max=100"`
	Title         string `json:"title"           validate:"required,max=500"`
	Body          string `json:"body"            validate:"required"`
	Topic         string `json:"topic"           validate:"required,max=100"`
	ArticleImgURL string `json:"article_img_url" validate:"omitempty,max=1000,url"`
}

// Normalize applies the default image URL. Title and body are kept exactly
// as typed. It is safe to call more than once.
func (a *NewArticle) Normalize() {
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = DefaultArticleImageURL
	}
}

// Validate checks that every required field is a non-empty string.
// Returns an error wrapping ErrInvalidBody otherwise.
func (a *NewArticle) Validate() error {
	return validateInput(a)
}
