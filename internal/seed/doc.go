// Package seed loads a YAML dataset of topics, users, articles and comments
// and writes it into a migrated database. It backs the seed command and the
// PostgreSQL integration tests.
package seed
