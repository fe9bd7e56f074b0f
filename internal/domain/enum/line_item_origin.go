package enum

import "encoding/json"

// LineItemOrigin records where a quote line item came from
type LineItemOrigin int

const (
	LineItemOriginProduct LineItemOrigin = 0
	LineItemOriginService LineItemOrigin = 1
	LineItemOriginCustom  LineItemOrigin = 2
)

func (o LineItemOrigin) String() string {
	return [...]string{"product", "service", "custom"}[o]
}

func (o LineItemOrigin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *LineItemOrigin) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*o = LineItemOrigin(i)
		return nil
	}
	switch str {
	case "product":
		*o = LineItemOriginProduct
	case "service":
		*o = LineItemOriginService
	case "custom":
		*o = LineItemOriginCustom
	}
	return nil
}
