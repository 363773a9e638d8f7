// Package api handles incoming HTTP requests for the NC News endpoints. Its
// handlers extract and shape-check path, query and body parameters, delegate
// to the store interfaces and write fixed JSON envelopes. Every failure is
// passed to HandleAPIError, which owns the mapping from error to status code
// and client-safe message.
package api
