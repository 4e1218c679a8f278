package mcp

// Document: https://modelcontextprotocol.io/docs/concepts/resources

const (
	// Client => Server
	MethodResourcesList = "resources/list"
)

// Direct resources
//
//	{
//		uri: string;           // Unique identifier for the resource
//		name: string;          // Human-readable name
//		description?: string;  // Optional description
//		mimeType?: string;     // Optional MIME type
//	}
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourcesListResponse keeps a non-nil slice so an empty list serializes
// as [] rather than null.
//
//	{
//		"jsonrpc": "2.0",
//		"id": 7,
//		"result": {
//		  "resources": []
//		}
//	  }
type ResourcesListResponse struct {
	Resources []Resource `json:"resources"`
}

func NewResourcesListResponse() ResourcesListResponse {
	return ResourcesListResponse{Resources: []Resource{}}
}
