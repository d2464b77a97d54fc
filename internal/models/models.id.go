// FilePath: server/telemetry/internal/models/models.id.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is an opaque identifier that edge devices send either as a JSON string or a number.
type ID string

// UnmarshalJSON accepts "123", 123 and null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsEmpty() bool {
	return strings.TrimSpace(string(id)) == ""
}
