// Package docs holds the endpoint documentation served at GET /api.
// The document is parsed once at startup and never modified afterwards.
package docs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

//go:embed endpoints.json
var embedded []byte

// ErrInvalidDocument is returned when a document is not a JSON object of
// endpoint descriptions.
var ErrInvalidDocument = errors.New("invalid endpoints document")

// Endpoint describes one route.
type Endpoint struct {
	Description     string          `json:"description"`
	Queries         []string        `json:"queries,omitempty"`
	ExampleRequest  json.RawMessage `json:"exampleRequest,omitempty"`
	ExampleResponse json.RawMessage `json:"exampleResponse,omitempty"`
}

// Endpoints is an immutable, pre-encoded endpoints document.
type Endpoints struct {
	routes  []string
	encoded []byte
}

// Default parses the document compiled into the binary.
func Default() (*Endpoints, error) {
	return Parse(embedded)
}

// Load reads the document at path, or the embedded one when path is empty.
func Load(path string) (*Endpoints, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read endpoints file: %w", err)
	}
	return Parse(data)
}

// Parse validates data and keeps a compact copy of it.
// Every entry needs a description; queries, when present, must be a list.
func Parse(data []byte) (*Endpoints, error) {
	var doc map[string]Endpoint
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: no endpoints", ErrInvalidDocument)
	}

	routes := make([]string, 0, len(doc))
	for route, ep := range doc {
		if ep.Description == "" {
			return nil, fmt.Errorf("%w: %q has no description", ErrInvalidDocument, route)
		}
		routes = append(routes, route)
	}
	sort.Strings(routes)

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &Endpoints{routes: routes, encoded: buf.Bytes()}, nil
}

// Routes returns the documented routes in sorted order.
func (e *Endpoints) Routes() []string {
	out := make([]string, len(e.routes))
	copy(out, e.routes)
	return out
}

// JSON returns a copy of the encoded document.
func (e *Endpoints) JSON() []byte {
	out := make([]byte, len(e.encoded))
	copy(out, e.encoded)
	return out
}
