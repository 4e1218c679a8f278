package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// NormalizeOutcome maps a raw tool outcome onto the uniform result shape, a
// mapping with a content list. Outcomes already carrying a content key pass
// through untouched; sequences map element-wise; anything else becomes one
// text block.
func NormalizeOutcome(outcome interface{}) interface{} {
	switch v := outcome.(type) {
	case mcp.ToolsCallResponse:
		return v
	case mcp.M:
		if _, ok := v["content"]; ok {
			return v
		}
	case map[string]interface{}:
		if _, ok := v["content"]; ok {
			return v
		}
	case []mcp.Content:
		return mcp.ToolsCallResponse{Content: v}
	case []interface{}:
		return mcp.M{"content": normalizeItems(v)}
	}
	return mcp.M{"content": []interface{}{textBlock(outcome)}}
}

func normalizeItems(items []interface{}) []interface{} {
	content := make([]interface{}, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case mcp.Content:
			content = append(content, it)
		case mcp.M:
			content = append(content, it)
		case map[string]interface{}:
			content = append(content, it)
		default:
			content = append(content, textBlock(it))
		}
	}
	return content
}

func textBlock(v interface{}) mcp.Content {
	return mcp.Content{Type: "text", Text: stringify(v)}
}

// stringify renders strings as-is and everything else as indented JSON so
// agent clients get readable payloads.
func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
