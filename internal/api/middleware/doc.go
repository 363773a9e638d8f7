// Package middleware holds the HTTP middleware that wraps every API route:
// trace ids, panic recovery, Prometheus metrics and rate limiting.
package middleware
