package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap stores an opaque key-value bag as a JSON column. Values are passed
// through verbatim and never interpreted.
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONMap")
	}
	return json.Unmarshal(data, m)
}

// GormDataType tells gorm which column type to use
func (JSONMap) GormDataType() string {
	return "text"
}
