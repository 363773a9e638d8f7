// Package postgres provides PostgreSQL implementations of the store interfaces
// defined in internal/store, along with the embedded goose migrations that
// create the schema they read and write.
//
// Every statement is parameterized. The only SQL fragments chosen at runtime
// are ORDER BY columns and directions, and those come from closed lookup
// tables keyed by the store package's sort enums.
package postgres
