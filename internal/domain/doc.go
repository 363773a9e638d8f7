// Package domain contains the core entities of the news API (topics, articles,
// comments and users) together with the input validation rules shared by the
// HTTP and storage layers. It is independent of any specific infrastructure.
package domain
