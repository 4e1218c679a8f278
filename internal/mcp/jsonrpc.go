package mcp

import "encoding/json"

const (
	JsonRPCVersion = "2.0"
)

// Documents: https://modelcontextprotocol.io/docs/concepts/transports

// Request
//
//	{
//		jsonrpc: "2.0",
//		id: number | string,
//		method: string,
//		params?: object
//	}
//
// ID is kept raw so an absent id can be told apart from an explicit null.
// A request without an id is a notification and gets no response; a request
// with "id": null gets a response echoing null.
type Request struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  interface{}     `json:"params,omitempty"`
}

// HasID reports whether the request carried an id member at all.
func (r *Request) HasID() bool {
	return r.ID != nil
}

// Response
//
//	{
//		jsonrpc: "2.0",
//		id: number | string,
//		result?: object,
//		error?: {
//			code: number,
//			message: string,
//			data?: unknown
//		}
//	}
type Response struct {
	JsonRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

func NewResponse(id interface{}, result interface{}) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Result:  result,
	}
}
