package shared

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList stores a list of strings as a JSON column.
// It works on both postgres (jsonb) and sqlite (text) backends.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// JSONDocument stores an opaque JSON document as a column.
// Used for nested sub-documents (skills, experience, blog content blocks)
// that the domain treats as a whole.
type JSONDocument json.RawMessage

// Value implements driver.Valuer
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "null", nil
	}
	if !json.Valid(d) {
		return nil, errors.New("invalid JSON document")
	}
	return string(d), nil
}

// Scan implements sql.Scanner
func (d *JSONDocument) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*d = append((*d)[0:0], v...)
	case string:
		*d = JSONDocument(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONDocument", value)
	}
	return nil
}

// MarshalJSON returns the document as-is
func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON stores the raw bytes
func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("UnmarshalJSON on nil JSONDocument")
	}
	*d = append((*d)[0:0], data...)
	return nil
}
