package command

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// knobKind tags the accepted shapes of a knob value.
type knobKind int

const (
	knobNumber knobKind = iota
	knobString
	knobBool
	knobArray
)

// KnobValue is the closed union of values a Nuke knob accepts over the
// wire: a number, a string, a boolean, or a flat array of those. Objects,
// nulls, and nested arrays are rejected at construction, so a KnobValue
// always reserializes deterministically.
type KnobValue struct {
	kind knobKind
	num  float64
	str  string
	b    bool
	arr  []KnobValue
}

// KnobValueOf builds a KnobValue from a decoded JSON value.
func KnobValueOf(value any) (KnobValue, error) {
	return knobValueOf(value, true)
}

func knobValueOf(value any, allowArray bool) (KnobValue, error) {
	switch v := value.(type) {
	case float64:
		return KnobValue{kind: knobNumber, num: v}, nil
	case float32:
		return KnobValue{kind: knobNumber, num: float64(v)}, nil
	case int:
		return KnobValue{kind: knobNumber, num: float64(v)}, nil
	case int32:
		return KnobValue{kind: knobNumber, num: float64(v)}, nil
	case int64:
		return KnobValue{kind: knobNumber, num: float64(v)}, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return KnobValue{}, fmt.Errorf("must be a valid number: %v", err)
		}
		return KnobValue{kind: knobNumber, num: f}, nil
	case string:
		return KnobValue{kind: knobString, str: v}, nil
	case bool:
		return KnobValue{kind: knobBool, b: v}, nil
	case nil:
		return KnobValue{}, fmt.Errorf("must not be null")
	default:
		items, ok := anySlice(value)
		if !ok {
			return KnobValue{}, fmt.Errorf("must be a number, string, boolean, or flat array, got %T", value)
		}
		if !allowArray {
			return KnobValue{}, fmt.Errorf("must not contain nested arrays")
		}
		arr := make([]KnobValue, len(items))
		for i, item := range items {
			kv, err := knobValueOf(item, false)
			if err != nil {
				return KnobValue{}, fmt.Errorf("element %d %v", i, err)
			}
			arr[i] = kv
		}
		return KnobValue{kind: knobArray, arr: arr}, nil
	}
}

// MarshalJSON reserializes each case in a fixed form: numbers with the
// shortest round-trip representation, strings and booleans as-is, arrays
// element by element.
func (k KnobValue) MarshalJSON() ([]byte, error) {
	switch k.kind {
	case knobNumber:
		if k.num == float64(int64(k.num)) {
			return []byte(strconv.FormatInt(int64(k.num), 10)), nil
		}
		return []byte(strconv.FormatFloat(k.num, 'g', -1, 64)), nil
	case knobString:
		return json.Marshal(k.str)
	case knobBool:
		return json.Marshal(k.b)
	case knobArray:
		out := []byte{'['}
		for i, el := range k.arr {
			if i > 0 {
				out = append(out, ',')
			}
			raw, err := el.MarshalJSON()
			if err != nil {
				return nil, err
			}
			out = append(out, raw...)
		}
		return append(out, ']'), nil
	default:
		return nil, fmt.Errorf("knob value has undeclared kind %d", k.kind)
	}
}
