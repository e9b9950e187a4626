// Package command defines the fixed set of operations the Nuke bridge
// add-on accepts: their wire names, argument shapes, defaults, and the
// validation applied before anything touches the network.
package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidArgs marks argument validation failures. Wrapped errors carry
// the first violated constraint and name the offending parameter.
var ErrInvalidArgs = errors.New("invalid arguments")

// Kind enumerates the shapes a parameter can declare.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	Array
	Object
	// Knob is the closed union of knob value shapes: number, string,
	// boolean, or a flat array of those.
	Knob
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Array:
		return "array"
	case Object:
		return "object"
	case Knob:
		return "knob value"
	default:
		return "unknown"
	}
}

// Param declares one named argument of a command.
type Param struct {
	Name     string
	Kind     Kind
	Required bool
	Desc     string

	Enum    []string // String params: allowed literals
	Default any      // filled in by Defaulted when absent
	Elem    Kind     // Array params: element kind
	Fields  []Param  // Object params: declared members, all optional on the wire
	// FreeForm marks an Object param that accepts arbitrary keys.
	FreeForm bool
}

// Descriptor declares one command. Descriptors are immutable once
// registered; the full set is fixed at process start.
type Descriptor struct {
	Name   string
	Desc   string
	Params []Param
}

// Check validates args against the descriptor and reports the first
// violated constraint: unknown names, missing required parameters, wrong
// primitive types, values outside an enumerated set, or array element
// mismatches. Values are never coerced; a string is not accepted where a
// number is declared.
func (d *Descriptor) Check(args map[string]any) error {
	declared := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		declared[p.Name] = true
	}

	var unknown []string
	for name := range args {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return invalidArgsError("unknown argument %q", unknown[0])
	}

	for _, p := range d.Params {
		value, ok := args[p.Name]
		if !ok {
			if p.Required {
				return invalidArgsError("missing required argument %q", p.Name)
			}
			continue
		}
		if err := checkValue(p, value, p.Name); err != nil {
			return err
		}
	}
	return nil
}

// Defaulted returns a copy of args with declared defaults filled in for
// absent optional parameters and knob values reduced to canonical form.
// Check must pass first; Defaulted does not re-validate.
func (d *Descriptor) Defaulted(args map[string]any) map[string]any {
	out := make(map[string]any, len(args)+2)
	for k, v := range args {
		out[k] = v
	}

	for _, p := range d.Params {
		value, ok := out[p.Name]
		if !ok {
			if p.Default != nil {
				out[p.Name] = p.Default
			}
			continue
		}
		if p.Kind == Knob {
			if kv, err := KnobValueOf(value); err == nil {
				out[p.Name] = kv
			}
		}
	}
	return out
}

func checkValue(p Param, value any, path string) error {
	switch p.Kind {
	case String:
		s, ok := value.(string)
		if !ok {
			return wrongTypeError(path, p.Kind, value)
		}
		return checkEnum(p, s, path)
	case Number:
		if !isNumber(value) {
			return wrongTypeError(path, p.Kind, value)
		}
		return nil
	case Bool:
		if _, ok := value.(bool); !ok {
			return wrongTypeError(path, p.Kind, value)
		}
		return nil
	case Array:
		items, ok := anySlice(value)
		if !ok {
			return wrongTypeError(path, p.Kind, value)
		}
		elem := Param{Kind: p.Elem}
		for i, item := range items {
			if err := checkValue(elem, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case Object:
		obj, ok := value.(map[string]any)
		if !ok {
			return wrongTypeError(path, p.Kind, value)
		}
		if p.FreeForm {
			return nil
		}
		for _, f := range p.Fields {
			v, ok := obj[f.Name]
			if !ok {
				continue
			}
			if err := checkValue(f, v, path+"."+f.Name); err != nil {
				return err
			}
		}
		return nil
	case Knob:
		if _, err := KnobValueOf(value); err != nil {
			return invalidArgsError("argument %q %v", path, err)
		}
		return nil
	default:
		return invalidArgsError("argument %q has undeclared kind", path)
	}
}

func checkEnum(p Param, s, path string) error {
	if len(p.Enum) == 0 {
		return nil
	}
	for _, allowed := range p.Enum {
		if s == allowed {
			return nil
		}
	}
	return invalidArgsError("argument %q must be one of %s, got %q", path, quotedList(p.Enum), s)
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int32, int64, float32, float64, json.Number:
		return true
	default:
		return false
	}
}

func anySlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

func quotedList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Quote(v)
	}
	return strings.Join(parts, ", ")
}

func wrongTypeError(path string, want Kind, got any) error {
	return invalidArgsError("argument %q must be %s, got %T", path, want, got)
}

func invalidArgsError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgs, fmt.Sprintf(format, args...))
}
