package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfxforge/nukemcp/internal/command"
)

// parseCallArgs turns the call subcommand's trailing arguments into the
// argument map the dispatcher expects: either one positional JSON object,
// or GNU-style long flags whose string values are coerced to the
// descriptor's declared kinds before the strict validation pass.
func parseCallArgs(desc *command.Descriptor, args []string) (map[string]any, error) {
	if len(args) == 0 {
		return map[string]any{}, nil
	}

	if len(args) == 1 && !strings.HasPrefix(args[0], "--") {
		return parseJSONObject(args[0])
	}

	raw := make(map[string]any)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return nil, fmt.Errorf("unexpected positional argument: %s", arg)
		}
		key, value, err := parseLongFlagValue(args, &i, arg)
		if err != nil {
			return nil, err
		}
		putArgValue(raw, key, value)
	}
	return coerceArgs(desc, raw)
}

func parseJSONObject(raw string) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON arguments: %w", err)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("JSON arguments must be an object")
	}
	return obj, nil
}

// parseLongFlagValue handles --key=value and --key value; a flag with no
// value becomes boolean true.
func parseLongFlagValue(args []string, idx *int, token string) (string, any, error) {
	body := strings.TrimPrefix(token, "--")
	if body == "" {
		return "", nil, fmt.Errorf("invalid flag: %s", token)
	}

	if eq := strings.Index(body, "="); eq >= 0 {
		key := body[:eq]
		if key == "" {
			return "", nil, fmt.Errorf("invalid flag: %s", token)
		}
		return key, body[eq+1:], nil
	}

	if *idx+1 < len(args) && !strings.HasPrefix(args[*idx+1], "--") {
		*idx = *idx + 1
		return body, args[*idx], nil
	}
	return body, true, nil
}

// putArgValue collects repeated flags into an array.
func putArgValue(dst map[string]any, key string, value any) {
	if existing, ok := dst[key]; ok {
		switch v := existing.(type) {
		case []any:
			dst[key] = append(v, value)
		default:
			dst[key] = []any{v, value}
		}
		return
	}
	dst[key] = value
}

// coerceArgs converts flag strings to the descriptor's kinds. Unknown
// keys pass through untouched so the strict validation pass rejects them
// with its usual message.
func coerceArgs(desc *command.Descriptor, raw map[string]any) (map[string]any, error) {
	params := make(map[string]command.Param, len(desc.Params))
	for _, p := range desc.Params {
		params[p.Name] = p
	}

	out := make(map[string]any, len(raw))
	for key, value := range raw {
		p, ok := params[key]
		if !ok {
			out[key] = value
			continue
		}
		coerced, err := coerceFlagValue(p, value)
		if err != nil {
			return nil, err
		}
		out[key] = coerced
	}
	return out, nil
}

func coerceFlagValue(p command.Param, value any) (any, error) {
	switch p.Kind {
	case command.String:
		return value, nil
	case command.Number:
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q must be number: %v", p.Name, err)
		}
		return f, nil
	case command.Bool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("argument %q must be boolean: %v", p.Name, err)
			}
			return b, nil
		default:
			return value, nil
		}
	case command.Array:
		return coerceFlagArray(p, value)
	case command.Object:
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		obj, err := parseJSONObject(s)
		if err != nil {
			return nil, fmt.Errorf("argument %q must be a JSON object: %v", p.Name, err)
		}
		return obj, nil
	case command.Knob:
		// A knob flag may be a bare number, boolean, JSON array, or
		// arbitrary text; JSON wins when the value parses as JSON.
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return decoded, nil
		}
		return s, nil
	default:
		return value, nil
	}
}

func coerceFlagArray(p command.Param, value any) (any, error) {
	elem := command.Param{Name: p.Name, Kind: p.Elem}

	switch v := value.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			coerced, err := coerceFlagValue(elem, item)
			if err != nil {
				return nil, err
			}
			out = append(out, coerced)
		}
		return out, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "[") {
			var parsed []any
			if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
				return nil, fmt.Errorf("argument %q must be a JSON array: %v", p.Name, err)
			}
			return parsed, nil
		}
		coerced, err := coerceFlagValue(elem, v)
		if err != nil {
			return nil, err
		}
		return []any{coerced}, nil
	default:
		return []any{value}, nil
	}
}
