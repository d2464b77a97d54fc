// FilePath: server/telemetry/internal/ingest/payload.go
package ingest

import (
	"bytes"
	"encoding/json"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
)

// DecodePayload decodes a request body that holds either one object or an array of objects.
// A single object yields a one-element slice; an empty array yields an empty slice.
func DecodePayload[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, errors.NewValidationError("Bad Request: invalid request body", nil)
	}

	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, errors.NewValidationError("Bad Request: invalid request body", err)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, errors.NewValidationError("Bad Request: invalid request body", err)
	}
	return []T{item}, nil
}
