package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Technique is the embroidery technique used on a pollera
type Technique int

const (
	TechniqueSombreada  Technique = 0
	TechniqueMarcada    Technique = 1
	TechniqueZurcida    Technique = 2
	TechniqueAplicacion Technique = 3
)

func (t Technique) String() string {
	return [...]string{"Sombreada", "Marcada", "Zurcida", "Aplicación"}[t]
}

// ParseTechnique converts a technique name into a Technique
func ParseTechnique(str string) (Technique, error) {
	switch str {
	case "Sombreada":
		return TechniqueSombreada, nil
	case "Marcada":
		return TechniqueMarcada, nil
	case "Zurcida":
		return TechniqueZurcida, nil
	case "Aplicación":
		return TechniqueAplicacion, nil
	}
	return TechniqueSombreada, fmt.Errorf("unknown technique %q", str)
}

func (t Technique) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Technique) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = Technique(i)
		return nil
	}
	switch str {
	case "Sombreada":
		*t = TechniqueSombreada
	case "Marcada":
		*t = TechniqueMarcada
	case "Zurcida":
		*t = TechniqueZurcida
	case "Aplicación":
		*t = TechniqueAplicacion
	}
	return nil
}

func (t Technique) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *Technique) Scan(value interface{}) error {
	if value == nil {
		*t = TechniqueSombreada
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = Technique(v)
	case int:
		*t = Technique(v)
	}
	return nil
}
