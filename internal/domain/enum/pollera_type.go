package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PolleraType classifies a pollera by regional style
type PolleraType int

const (
	PolleraTypeGala       PolleraType = 0
	PolleraTypeMontuna    PolleraType = 1
	PolleraTypeCongo      PolleraType = 2
	PolleraTypeNina       PolleraType = 3
	PolleraTypeEstilizada PolleraType = 4
	PolleraTypeVeraguense PolleraType = 5
)

func (t PolleraType) String() string {
	return [...]string{"Gala", "Montuna", "Congo", "Niña", "Estilizada", "Veraguense"}[t]
}

// ParsePolleraType converts a style name into a PolleraType
func ParsePolleraType(str string) (PolleraType, error) {
	switch str {
	case "Gala":
		return PolleraTypeGala, nil
	case "Montuna":
		return PolleraTypeMontuna, nil
	case "Congo":
		return PolleraTypeCongo, nil
	case "Niña":
		return PolleraTypeNina, nil
	case "Estilizada":
		return PolleraTypeEstilizada, nil
	case "Veraguense":
		return PolleraTypeVeraguense, nil
	}
	return PolleraTypeGala, fmt.Errorf("unknown pollera type %q", str)
}

func (t PolleraType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PolleraType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = PolleraType(i)
		return nil
	}
	switch str {
	case "Gala":
		*t = PolleraTypeGala
	case "Montuna":
		*t = PolleraTypeMontuna
	case "Congo":
		*t = PolleraTypeCongo
	case "Niña":
		*t = PolleraTypeNina
	case "Estilizada":
		*t = PolleraTypeEstilizada
	case "Veraguense":
		*t = PolleraTypeVeraguense
	}
	return nil
}

func (t PolleraType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *PolleraType) Scan(value interface{}) error {
	if value == nil {
		*t = PolleraTypeGala
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = PolleraType(v)
	case int:
		*t = PolleraType(v)
	}
	return nil
}
