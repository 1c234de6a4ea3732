package api

import "encoding/json"

// Optional is a JSON field wrapper that distinguishes three states:
// absent from the body, explicit null, and present with a value. Partial
// updates need all three, since only fields present in the body may be
// applied.
type Optional[T any] struct {
	Set   bool // field appeared in the body
	Valid bool // field held a non-null value
	Value T
}

// UnmarshalJSON records presence and decodes the value. encoding/json
// only calls this when the key exists, so Set is true for null too.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
