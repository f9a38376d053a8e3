package zammad

import (
	"encoding/json"
	"time"
)

// Time supports unmarshalling timestamps returned by the Zammad API, which
// may be null, e.g. close_at on a ticket that was never closed.
type Time struct {
	time.Time
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (m *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	return json.Unmarshal(data, &m.Time)
}

// Equal reports whether both timestamps represent the same instant.
func (m Time) Equal(other Time) bool {
	return m.Time.Equal(other.Time)
}
