// Package store defines interfaces for data persistence operations together
// with the query-shape whitelist used to build listing queries. These
// interfaces keep HTTP handlers independent of the SQL that backs them.
package store
