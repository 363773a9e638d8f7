package shared

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/nc-news-api/internal/domain"
)

// MaxBodyBytes bounds the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v.
// Malformed JSON, a missing body and fields of the wrong type all fail with
// an error wrapping domain.ErrInvalidBody.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", domain.ErrInvalidBody)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBody, err)
	}
	return nil
}
