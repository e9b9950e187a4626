package command

// InputSchema renders the descriptor's argument shape as a JSON Schema
// object map, the form the MCP tool listing and the schema subcommand
// both advertise.
func (d *Descriptor) InputSchema() map[string]any {
	props := make(map[string]any, len(d.Params))
	var required []string
	for _, p := range d.Params {
		props[p.Name] = p.schema()
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func (p Param) schema() map[string]any {
	out := map[string]any{}
	if p.Desc != "" {
		out["description"] = p.Desc
	}

	switch p.Kind {
	case String:
		out["type"] = "string"
		if len(p.Enum) > 0 {
			enum := make([]any, len(p.Enum))
			for i, v := range p.Enum {
				enum[i] = v
			}
			out["enum"] = enum
		}
	case Number:
		out["type"] = "number"
	case Bool:
		out["type"] = "boolean"
	case Array:
		out["type"] = "array"
		out["items"] = map[string]any{"type": p.Elem.String()}
	case Object:
		out["type"] = "object"
		if p.FreeForm {
			out["additionalProperties"] = true
		} else if len(p.Fields) > 0 {
			fields := make(map[string]any, len(p.Fields))
			for _, f := range p.Fields {
				fields[f.Name] = f.schema()
			}
			out["properties"] = fields
		}
	case Knob:
		out["oneOf"] = []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string"},
			map[string]any{"type": "boolean"},
			map[string]any{"type": "array"},
		}
	}

	if p.Default != nil {
		out["default"] = p.Default
	}
	return out
}
