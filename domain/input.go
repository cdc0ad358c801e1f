package domain

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input is a numeric form field. It remembers whether the user left it
// blank and keeps whatever text was typed, so a half-edited field can be
// shown back exactly as entered instead of as "0".
type Input struct {
	value float64
	raw   string
	set   bool
}

// Num returns a field holding v.
func Num(v float64) Input {
	return Input{value: v, set: true}
}

// Unset returns a blank field.
func Unset() Input {
	return Input{}
}

// Raw returns a field holding the text s as typed.
func Raw(s string) Input {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Input{value: math.NaN(), raw: s, set: true}
	}
	return Input{value: v, raw: s, set: true}
}

func (i Input) IsSet() bool {
	return i.set
}

// Float returns the value used for computation: blank, non-numeric, NaN and
// infinite inputs all become 0. Negative values pass through.
func (i Input) Float() float64 {
	if !i.set || math.IsNaN(i.value) || math.IsInf(i.value, 0) {
		return 0
	}
	return i.value
}

// String returns the field as it should be displayed.
func (i Input) String() string {
	if !i.set {
		return ""
	}
	if i.raw != "" {
		return i.raw
	}
	return strconv.FormatFloat(i.value, 'f', -1, 64)
}

func (i Input) Equal(o Input) bool {
	return i.set == o.set && i.String() == o.String()
}

func (i Input) MarshalJSON() ([]byte, error) {
	if !i.set {
		return []byte(`""`), nil
	}
	if i.raw != "" || math.IsNaN(i.value) || math.IsInf(i.value, 0) {
		return []byte(strconv.Quote(i.String())), nil
	}
	return []byte(strconv.FormatFloat(i.value, 'f', -1, 64)), nil
}

func (i *Input) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*i = Unset()
	case strings.HasPrefix(s, `"`):
		text, err := strconv.Unquote(s)
		if err != nil {
			*i = Raw(s)
			return nil
		}
		*i = Raw(text)
	case s == "true" || s == "false" || strings.HasPrefix(s, "{") || strings.HasPrefix(s, "["):
		*i = Input{value: math.NaN(), raw: s, set: true}
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*i = Input{value: math.NaN(), raw: s, set: true}
			return nil
		}
		*i = Num(v)
	}
	return nil
}

func (i Input) MarshalYAML() (interface{}, error) {
	if !i.set {
		return "", nil
	}
	if i.raw != "" || math.IsNaN(i.value) || math.IsInf(i.value, 0) {
		return i.String(), nil
	}
	return i.value, nil
}

func (i *Input) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*i = Unset()
		return nil
	}
	switch node.Tag {
	case "!!int", "!!float":
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			*i = Raw(node.Value)
			return nil
		}
		*i = Num(v)
	default:
		*i = Raw(node.Value)
	}
	return nil
}
