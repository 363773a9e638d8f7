package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// Route parameter names.
const (
	paramArticleID = "article_id"
	paramCommentID = "comment_id"
	paramUsername  = "username"
)

// getPathID parses a positive integer id from the named route parameter.
// Returns an error wrapping domain.ErrInvalidQuery otherwise.
func getPathID(r *http.Request, paramName string) (int, error) {
	return domain.ParseID(paramName, chi.URLParam(r, paramName))
}

// getPage reads the limit and page query parameters.
func getPage(r *http.Request) (store.Page, error) {
	q := r.URL.Query()
	return store.ParsePage(q.Get("limit"), q.Get("page"))
}

// getArticleQuery reads the listing parameters of GET /api/articles.
// Sort and order are checked before pagination, so an unsupported sort
// reports not found even when the page is also malformed.
func getArticleQuery(r *http.Request) (store.ArticleQuery, error) {
	q := r.URL.Query()

	sort, err := store.ParseArticleSort(q.Get("sort_by"))
	if err != nil {
		return store.ArticleQuery{}, err
	}

	order, err := store.ParseSortOrder(q.Get("order"))
	if err != nil {
		return store.ArticleQuery{}, err
	}

	page, err := getPage(r)
	if err != nil {
		return store.ArticleQuery{}, err
	}

	return store.ArticleQuery{
		Topic: q.Get("topic"),
		Sort:  sort,
		Order: order,
		Page:  page,
	}, nil
}
