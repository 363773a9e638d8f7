// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, a .env file and
// environment variables). It provides type-safe access to the settings needed
// by the server while keeping configuration details out of request handling.
package config
