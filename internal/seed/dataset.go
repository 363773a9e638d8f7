package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/dev.yaml
var devData []byte

// ErrInvalidDataset is returned when a dataset refers to rows it does not define.
var ErrInvalidDataset = errors.New("invalid seed dataset")

// Dataset is the full content written by Insert.
type Dataset struct {
	Topics   []Topic   `yaml:"topics"`
	Users    []User    `yaml:"users"`
	Articles []Article `yaml:"articles"`
	Comments []Comment `yaml:"comments"`
}

// Topic is one row of the topics table.
type Topic struct {
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// User is one row of the users table.
type User struct {
	Username  string `yaml:"username"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}

// Article is one row of the articles table. Its id is assigned on insert.
type Article struct {
	Title         string    `yaml:"title"`
	Topic         string    `yaml:"topic"`
	Author        string    `yaml:"author"`
	Body          string    `yaml:"body"`
	CreatedAt     time.Time `yaml:"created_at"`
	Votes         int       `yaml:"votes"`
	ArticleImgURL string    `yaml:"article_img_url"`
}

// Comment is one row of the comments table.
// Article is the 1-based position of the parent in Dataset.Articles.
type Comment struct {
	Article   int       `yaml:"article"`
	Author    string    `yaml:"author"`
	Body      string    `yaml:"body"`
	Votes     int       `yaml:"votes"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Load decodes and validates a dataset. Unknown keys are rejected.
func Load(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Default returns the dataset bundled with the binary.
func Default() (*Dataset, error) {
	return Load(bytes.NewReader(devData))
}

// Validate checks that every reference in the dataset resolves.
func (ds *Dataset) Validate() error {
	topics := make(map[string]bool, len(ds.Topics))
	for _, t := range ds.Topics {
		topics[t.Slug] = true
	}
	users := make(map[string]bool, len(ds.Users))
	for _, u := range ds.Users {
		users[u.Username] = true
	}

	for i, a := range ds.Articles {
		if !topics[a.Topic] {
			return fmt.Errorf("%w: article %d has unknown topic %q", ErrInvalidDataset, i+1, a.Topic)
		}
		if !users[a.Author] {
			return fmt.Errorf("%w: article %d has unknown author %q", ErrInvalidDataset, i+1, a.Author)
		}
	}

	for i, c := range ds.Comments {
		if c.Article < 1 || c.Article > len(ds.Articles) {
			return fmt.Errorf("%w: comment %d refers to article %d", ErrInvalidDataset, i+1, c.Article)
		}
		if !users[c.Author] {
			return fmt.Errorf("%w: comment %d has unknown author %q", ErrInvalidDataset, i+1, c.Author)
		}
	}

	return nil
}
