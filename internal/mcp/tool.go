package mcp

// Document: https://modelcontextprotocol.io/docs/concepts/tools

const (
	// Client => Server
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

type M map[string]interface{}

// Tool
//
//	{
//		name: string;          // Unique identifier for the tool
//		description?: string;  // Human-readable description
//		inputSchema: {         // JSON Schema for the tool's parameters
//			type: "object",
//			properties: { ... }  // Tool-specific parameters
//		}
//	}
//
//	{
//		"jsonrpc": "2.0",
//		"id": 1,
//		"result": {
//		  "tools": [
//			{
//			  "name": "search",
//			  "description": "Retrieves information about the Google Ads account using GAQL queries",
//			  "inputSchema": {
//				"type": "object",
//				"properties": {
//				  "customer_id": { "type": "string" },
//				  "resource": { "type": "string" },
//				  "fields": { "type": "array", "items": { "type": "string" } },
//				  "conditions": { "type": "array", "items": { "type": "string" } },
//				  "orderings": { "type": "array", "items": { "type": "string" } },
//				  "limit": { "type": "string", "description": "..." }
//				},
//				"required": ["customer_id", "fields", "resource"]
//			  }
//			},
//			{
//			  "name": "list_accessible_customers",
//			  "description": "Returns ids of customers directly accessible by the user authenticating the call",
//			  "inputSchema": {
//				"type": "object",
//				"properties": {}
//			  }
//			}
//		  ]
//		}
//	  }
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	InputSchema ToolSchema `json:"inputSchema"`
}

type ToolSchema struct {
	Type       string   `json:"type"`
	Properties M        `json:"properties"`
	Required   []string `json:"required,omitempty"`
}

type ToolsListResponse struct {
	Tools []Tool `json:"tools"`
}

//	{
//		"method": "tools/call",
//		"params": {
//		  "name": "search",
//		  "arguments": {
//			"customer_id": "1234567890",
//			"resource": "campaign",
//			"fields": ["campaign.id", "campaign.name", "campaign.status"],
//			"limit": "50"
//		  },
//		  "_meta": {
//			"progressToken": 1
//		  }
//		},
//		"jsonrpc": "2.0",
//		"id": 3
//	  }
type ToolsCallRequest struct {
	Name      string `json:"name"`
	Arguments M      `json:"arguments"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 2,
//		"result": {
//		  "content": [
//			{
//			  "type": "text",
//			  "text": "[{\"campaign\":{\"id\":111,\"name\":\"Brand\"}}]"
//			}
//		  ]
//		}
//	  }
type ToolsCallResponse struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
