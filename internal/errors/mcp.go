package errors

import "github.com/mark3labs/mcp-go/mcp"

// ErrMCPTool renders err as a failed tool call. Tool failures travel in
// the result payload so the client can show them to the model; protocol
// errors are reserved for malformed requests.
func ErrMCPTool(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(err.Error())},
		IsError: true,
	}
}
