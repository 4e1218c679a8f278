package mcp

const (
	MethodInitialize = "initialize"
	ProtocolVersion  = "2024-11-05"

	// Requests whose method sits under this prefix are notifications by
	// convention and never receive a response, id or not.
	NotificationPrefix = "notifications/"
)

//	{
//		"method": "initialize",
//		"params": {
//		  "protocolVersion": "2024-11-05",
//		  "capabilities": {
//			"sampling": {},
//			"roots": {
//			  "listChanged": true
//			}
//		  },
//		  "clientInfo": {
//			"name": "mcp-inspector",
//			"version": "0.0.1"
//		  }
//		},
//		"jsonrpc": "2.0",
//		"id": 0
//	  }
type InitializeRequest struct {
	ProtocolVersion string      `json:"protocolVersion"`
	Capabilities    M           `json:"capabilities"`
	ClientInfo      *ClientInfo `json:"clientInfo"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 0,
//		"result": {
//		  "protocolVersion": "2024-11-05",
//		  "capabilities": {
//			"prompts": {},
//			"resources": {
//			  "subscribe": false,
//			  "listChanged": false
//			},
//			"sampling": {},
//			"tools": {
//			  "listChanged": true
//			}
//		  },
//		  "serverInfo": {
//			"name": "google-ads-mcp",
//			"version": "0.0.1"
//		  }
//		}
//	  }
type InitializeResponse struct {
	ProtocolVersion string     `json:"protocolVersion"`
	Capabilities    M          `json:"capabilities"`
	ServerInfo      ServerInfo `json:"serverInfo"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

var DefaultCapabilities = M{
	"tools":     M{"listChanged": true},
	"resources": M{"subscribe": false, "listChanged": false},
	"prompts":   M{},
	"sampling":  M{},
}
