package kitchen

import (
	"bytes"
	"encoding/json"
)

// Kitchen is a cloud kitchen listing as returned by the kitchen API.
//
// Every attribute is passed through untouched: numbers decode as
// json.Number so they render exactly as the API sent them, and fields
// other than the four the page shows are kept in Extra so they survive
// re-encoding.
type Kitchen struct {
	ID          any
	Name        any
	Rating      any
	Description any
	Extra       map[string]any
}

var knownFields = []string{"id", "name", "rating", "description"}

// UnmarshalJSON decodes one kitchen object without imposing types on its fields.
func (k *Kitchen) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return err
	}

	*k = Kitchen{
		ID:          fields["id"],
		Name:        fields["name"],
		Rating:      fields["rating"],
		Description: fields["description"],
	}
	for _, key := range knownFields {
		delete(fields, key)
	}
	if len(fields) > 0 {
		k.Extra = fields
	}
	return nil
}

// MarshalJSON writes the kitchen back out with its extra fields merged in.
func (k Kitchen) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(k.Extra)+len(knownFields))
	for key, v := range k.Extra {
		out[key] = v
	}
	out["id"] = k.ID
	out["name"] = k.Name
	out["rating"] = k.Rating
	out["description"] = k.Description
	return json.Marshal(out)
}
