package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

type SpecKind uint8

const (
	SpecAbsent SpecKind = iota
	SpecNumber
	SpecString
)

// SpecValue holds one specification attribute. Catalog data mixes plain
// numbers (tdp: 65) and strings with units (wattage: "650W"), so the value
// keeps whichever form it arrived in.
type SpecValue struct {
	kind SpecKind
	num  float64
	str  string
}

func Number(v float64) SpecValue { return SpecValue{kind: SpecNumber, num: v} }
func Text(s string) SpecValue    { return SpecValue{kind: SpecString, str: s} }

func (v SpecValue) Kind() SpecKind { return v.kind }
func (v SpecValue) IsAbsent() bool { return v.kind == SpecAbsent }

// Float returns the value when it was stored as a number.
func (v SpecValue) Float() (float64, bool) {
	return v.num, v.kind == SpecNumber
}

// Raw renders the value as it would be shown to a user.
func (v SpecValue) Raw() string {
	switch v.kind {
	case SpecNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case SpecString:
		return v.str
	default:
		return ""
	}
}

func (v SpecValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case SpecNumber:
		return json.Marshal(v.num)
	case SpecString:
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}

func (v *SpecValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = SpecValue{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			// booleans, arrays and objects are kept verbatim
			*v = Text(string(data))
			return nil
		}
		*v = Number(f)
	}
	return nil
}

func (v SpecValue) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case SpecNumber:
		return v.num, nil
	case SpecString:
		return v.str, nil
	default:
		return nil, nil
	}
}

func (v *SpecValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*v = Text(node.Value)
		return nil
	}
	switch node.Tag {
	case "!!null":
		*v = SpecValue{}
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}

type Specs map[string]SpecValue

// Get returns the named attribute, absent when missing. Safe on a nil map.
func (s Specs) Get(key string) SpecValue {
	if s == nil {
		return SpecValue{}
	}
	return s[key]
}

const (
	SpecTDP          = "tdp"
	SpecWattage      = "wattage"
	SpecLength       = "length"
	SpecMaxGPULength = "maxGPULength"
)
