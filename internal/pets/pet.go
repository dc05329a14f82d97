package pets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Pet is one tracked animal. ID is the creation time in Unix milliseconds.
type Pet struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     string `json:"age"`
	ID      int64  `json:"id"`
}

// UnmarshalJSON accepts age as either a string or a bare number, since older
// data written by hand may store it numerically.
func (p *Pet) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    string          `json:"name"`
		Species string          `json:"species"`
		Age     json.RawMessage `json:"age"`
		ID      int64           `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	age, err := decodeAge(raw.Age)
	if err != nil {
		return err
	}
	*p = Pet{Name: raw.Name, Species: raw.Species, Age: age, ID: raw.ID}
	return nil
}

func decodeAge(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("decode age: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("decode age: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// Describe renders the pet the way the list shows it.
func (p Pet) Describe() string {
	return fmt.Sprintf("%s is a %s and is %s years old", p.Name, p.Species, p.Age)
}
