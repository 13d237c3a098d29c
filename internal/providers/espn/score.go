package espn

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Score normalizes the shapes ESPN uses for a competitor score: a bare
// number, a numeric string, a {value, displayValue} object or null.
// Anything else decodes as absent rather than failing the payload.
type Score struct {
	Value   int
	Display string
	Present bool
}

type scoreObject struct {
	Value        *float64 `json:"value"`
	DisplayValue string   `json:"displayValue"`
}

func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		s.setFromString(raw)
	case '{':
		var obj scoreObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		if obj.Value != nil {
			s.setFromNumber(*obj.Value)
			if obj.DisplayValue != "" {
				s.Display = obj.DisplayValue
			}
			return nil
		}
		s.setFromString(obj.DisplayValue)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return nil
		}
		s.setFromNumber(n)
	}
	return nil
}

func (s *Score) setFromNumber(n float64) {
	s.Value = int(math.Round(n))
	s.Display = strconv.Itoa(s.Value)
	s.Present = true
}

func (s *Score) setFromString(raw string) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	s.setFromNumber(n)
	s.Display = raw
}

// DisplayOr returns the score as shown upstream, or fallback when absent.
func (s Score) DisplayOr(fallback string) string {
	if !s.Present {
		return fallback
	}
	return s.Display
}
