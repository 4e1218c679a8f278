package mcp

import (
	"strings"

	"github.com/spf13/cast"
)

// Some MCP clients validate tool schemas strictly and reject JSON Schema
// type unions such as {"type": ["integer", "string"]}. NormalizeSchema
// collapses every union-typed property to a plain "string" property, with
// a description explaining the coercion, so those clients can call the
// tool. The tool implementation converts the string back to the intended
// type.
//
// Only the direct members of "properties" are rewritten; nested schemas
// are left as they are. The input is never mutated and the result is
// stable under repeated normalization.
func NormalizeSchema(schema interface{}) interface{} {
	m, ok := asMap(schema)
	if !ok {
		return schema
	}
	props, ok := asMap(m["properties"])
	if !ok {
		return schema
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	out["properties"] = normalizeProperties(props)
	return out
}

// NormalizeToolSchema applies NormalizeSchema to a typed tool schema.
func NormalizeToolSchema(s ToolSchema) ToolSchema {
	s.Properties = normalizeProperties(s.Properties)
	return s
}

func normalizeProperties(props M) M {
	out := make(M, len(props))
	for name, raw := range props {
		prop, ok := asMap(raw)
		if !ok {
			out[name] = raw
			continue
		}
		union, ok := typeUnion(prop["type"])
		if !ok {
			out[name] = raw
			continue
		}
		collapsed := make(M, len(prop))
		for k, v := range prop {
			collapsed[k] = v
		}
		collapsed["type"] = "string"
		if _, exists := collapsed["description"]; !exists {
			collapsed["description"] = "Accepts " + strings.Join(union, " or ") +
				"; pass the value as a string and it will be coerced."
		}
		out[name] = collapsed
	}
	return out
}

func asMap(v interface{}) (M, bool) {
	switch m := v.(type) {
	case M:
		return m, true
	case map[string]interface{}:
		return M(m), true
	}
	return nil, false
}

// typeUnion reports whether a schema "type" value is a list of types,
// returning the member names.
func typeUnion(v interface{}) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		if len(list) == 0 {
			return nil, false
		}
		return append([]string(nil), list...), true
	case []interface{}:
		if len(list) == 0 {
			return nil, false
		}
		union := make([]string, 0, len(list))
		for _, item := range list {
			union = append(union, cast.ToString(item))
		}
		return union, true
	}
	return nil, false
}
