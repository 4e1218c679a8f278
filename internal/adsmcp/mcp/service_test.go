package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

type stubRegistry struct {
	tools     []mcp.Tool
	listErr   error
	outcome   interface{}
	callErr   error
	panicList bool
	panicCall bool

	calledTool string
	calledArgs mcp.M
}

func (s *stubRegistry) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if s.panicList {
		panic("registry exploded")
	}
	return s.tools, s.listErr
}

func (s *stubRegistry) CallTool(ctx context.Context, name string, args mcp.M) (interface{}, error) {
	if s.panicCall {
		panic("tool exploded")
	}
	s.calledTool = name
	s.calledArgs = args
	return s.outcome, s.callErr
}

func request(method, id string, params interface{}) *mcp.Request {
	req := &mcp.Request{JsonRPC: mcp.JsonRPCVersion, Method: method, Params: params}
	if id != "" {
		req.ID = json.RawMessage(id)
	}
	return req
}

func TestDispatchNotificationsGetNoResponse(t *testing.T) {
	s := NewService(&stubRegistry{})

	tests := []struct {
		name string
		req  *mcp.Request
	}{
		{"notification method with id", request("notifications/initialized", "1", nil)},
		{"notification method without id", request("notifications/cancelled", "", nil)},
		{"missing id on regular method", request("tools/list", "", nil)},
		{"missing id on unknown method", request("bogus/method", "", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := s.Dispatch(context.Background(), tt.req); resp != nil {
				t.Errorf("Dispatch() = %+v, want nil", resp)
			}
		})
	}
}

func TestDispatchUnknownMethod(t *testing.T) {
	s := NewService(&stubRegistry{})

	resp := s.Dispatch(context.Background(), request("foo/bar", "42", nil))
	if resp == nil || resp.Error == nil {
		t.Fatalf("Dispatch() = %+v, want error response", resp)
	}
	if resp.Error.Code != mcp.ErrMethodNotFound.Code {
		t.Errorf("Code = %d, want %d", resp.Error.Code, mcp.ErrMethodNotFound.Code)
	}
	if resp.Error.Message != "Method not found: foo/bar" {
		t.Errorf("Message = %q", resp.Error.Message)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"id":42`) {
		t.Errorf("response does not echo the id: %s", b)
	}
}

func TestDispatchEchoesNullID(t *testing.T) {
	s := NewService(&stubRegistry{})

	resp := s.Dispatch(context.Background(), request("no/such", "null", nil))
	if resp == nil {
		t.Fatal("explicit null id is still a call, want a response")
	}
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"id":null`) {
		t.Errorf("response should echo null id: %s", b)
	}
}

func TestInitializeIdempotent(t *testing.T) {
	s := NewService(&stubRegistry{})

	first := s.Dispatch(context.Background(), request("initialize", "1", mcp.M{
		"protocolVersion": "2024-11-05",
		"clientInfo":      mcp.M{"name": "test-agent", "version": "1.0"},
	}))
	second := s.Dispatch(context.Background(), request("initialize", "1", nil))

	b1, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(b1) != string(b2) {
		t.Errorf("initialize not idempotent:\n%s\n%s", b1, b2)
	}
	if !strings.Contains(string(b1), `"protocolVersion":"2024-11-05"`) {
		t.Errorf("missing protocol version: %s", b1)
	}
	if !strings.Contains(string(b1), `"name":"google-ads-mcp"`) {
		t.Errorf("missing server name: %s", b1)
	}
	for _, capability := range []string{`"tools"`, `"resources"`, `"prompts"`, `"sampling"`} {
		if !strings.Contains(string(b1), capability) {
			t.Errorf("capabilities missing %s: %s", capability, b1)
		}
	}
}

func toolsListNames(t *testing.T, resp *mcp.Response) []string {
	t.Helper()
	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}
	result, ok := resp.Result.(mcp.ToolsListResponse)
	if !ok {
		t.Fatalf("result type = %T", resp.Result)
	}
	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestToolsListFallback(t *testing.T) {
	tests := []struct {
		name     string
		registry Registry
	}{
		{"nil registry", nil},
		{"registry error", &stubRegistry{listErr: errors.New("backend down")}},
		{"registry empty", &stubRegistry{tools: []mcp.Tool{}}},
		{"registry panic", &stubRegistry{panicList: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(tt.registry)
			names := toolsListNames(t, s.Dispatch(context.Background(), request("tools/list", "1", nil)))
			if len(names) != 2 || names[0] != "search" || names[1] != "list_accessible_customers" {
				t.Errorf("fallback tools = %v", names)
			}
		})
	}
}

func TestToolsListNormalizesSchemas(t *testing.T) {
	reg := &stubRegistry{tools: []mcp.Tool{{
		Name: "custom",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"limit": mcp.M{"type": []interface{}{"integer", "string"}},
			},
		},
	}}}
	s := NewService(reg)

	resp := s.Dispatch(context.Background(), request("tools/list", "1", nil))
	result := resp.Result.(mcp.ToolsListResponse)
	limit := result.Tools[0].InputSchema.Properties["limit"].(mcp.M)
	if limit["type"] != "string" {
		t.Errorf("limit type = %v, want collapsed to string", limit["type"])
	}
	if desc, _ := limit["description"].(string); desc == "" {
		t.Error("collapsed union must gain a description")
	}
}

func TestToolsListFallbackSchemasNormalized(t *testing.T) {
	// The canonical search descriptor declares limit as a union; the
	// published list must not.
	s := NewService(nil)
	resp := s.Dispatch(context.Background(), request("tools/list", "1", nil))
	result := resp.Result.(mcp.ToolsListResponse)
	for _, tool := range result.Tools {
		if tool.Name != "search" {
			continue
		}
		limit := tool.InputSchema.Properties["limit"].(mcp.M)
		if limit["type"] != "string" {
			t.Errorf("published limit type = %v", limit["type"])
		}
	}
}

func TestToolsCallOutcomeShapes(t *testing.T) {
	tests := []struct {
		name    string
		outcome interface{}
		check   func(t *testing.T, result interface{})
	}{
		{
			name:    "content mapping passes through",
			outcome: mcp.M{"content": []interface{}{mcp.M{"type": "text", "text": "ready"}}},
			check: func(t *testing.T, result interface{}) {
				m, ok := result.(mcp.M)
				if !ok {
					t.Fatalf("result type = %T", result)
				}
				if _, ok := m["content"]; !ok {
					t.Errorf("content key lost: %v", m)
				}
			},
		},
		{
			name:    "string becomes one text block",
			outcome: "all good",
			check: func(t *testing.T, result interface{}) {
				m := result.(mcp.M)
				content := m["content"].([]interface{})
				block := content[0].(mcp.Content)
				if block.Type != "text" || block.Text != "all good" {
					t.Errorf("block = %+v", block)
				}
			},
		},
		{
			name:    "rows serialize to one JSON text block",
			outcome: []map[string]interface{}{{"campaign.id": "7"}},
			check: func(t *testing.T, result interface{}) {
				m := result.(mcp.M)
				content := m["content"].([]interface{})
				if len(content) != 1 {
					t.Fatalf("content length = %d", len(content))
				}
				block := content[0].(mcp.Content)
				if !strings.Contains(block.Text, `"campaign.id": "7"`) {
					t.Errorf("text = %q", block.Text)
				}
			},
		},
		{
			name: "sequence maps element-wise",
			outcome: []interface{}{
				mcp.Content{Type: "text", Text: "first"},
				mcp.M{"type": "image", "data": "zzz"},
				42,
			},
			check: func(t *testing.T, result interface{}) {
				m := result.(mcp.M)
				content := m["content"].([]interface{})
				if len(content) != 3 {
					t.Fatalf("content length = %d", len(content))
				}
				if block := content[0].(mcp.Content); block.Text != "first" {
					t.Errorf("text block = %+v", block)
				}
				if _, ok := content[1].(mcp.M); !ok {
					t.Errorf("mapping item type = %T", content[1])
				}
				if block := content[2].(mcp.Content); block.Text != "42" {
					t.Errorf("stringified item = %+v", block)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(&stubRegistry{outcome: tt.outcome})
			resp := s.Dispatch(context.Background(), request("tools/call", "1", mcp.M{
				"name":      "search",
				"arguments": mcp.M{},
			}))
			if resp == nil || resp.Error != nil {
				t.Fatalf("Dispatch() = %+v", resp)
			}
			tt.check(t, resp.Result)
		})
	}
}

func TestToolsCallPassesNameAndArguments(t *testing.T) {
	reg := &stubRegistry{outcome: "ok"}
	s := NewService(reg)

	s.Dispatch(context.Background(), request("tools/call", "1", mcp.M{
		"name":      "search",
		"arguments": mcp.M{"customer_id": "1234567890"},
	}))

	if reg.calledTool != "search" {
		t.Errorf("tool = %q", reg.calledTool)
	}
	if reg.calledArgs["customer_id"] != "1234567890" {
		t.Errorf("args = %v", reg.calledArgs)
	}
}

func TestToolsCallErrorEnrichedWithRemediation(t *testing.T) {
	reg := &stubRegistry{callErr: errors.New("permission denied: NOT_ADS_USER")}
	s := NewService(reg)

	resp := s.Dispatch(context.Background(), request("tools/call", "9", mcp.M{
		"name":      "search",
		"arguments": mcp.M{"customer_id": "1234567890"},
	}))
	if resp == nil || resp.Error == nil {
		t.Fatalf("Dispatch() = %+v, want error response", resp)
	}
	if resp.Error.Code != mcp.ErrInternalError.Code {
		t.Errorf("Code = %d", resp.Error.Code)
	}
	if !strings.HasPrefix(resp.Error.Message, "Error executing tool search:") {
		t.Errorf("Message = %q", resp.Error.Message)
	}
	if !strings.Contains(resp.Error.Message, "NOT_ADS_USER") {
		t.Errorf("Message lost the original failure: %q", resp.Error.Message)
	}
	if !strings.Contains(resp.Error.Message, "GOOGLE_ADS_LOGIN_CUSTOMER_ID") {
		t.Errorf("Message lacks remediation: %q", resp.Error.Message)
	}

	data, ok := resp.Error.Data.(mcp.M)
	if !ok {
		t.Fatalf("Data type = %T", resp.Error.Data)
	}
	if data["tool"] != "search" {
		t.Errorf("data.tool = %v", data["tool"])
	}
	if _, ok := data["arguments"]; !ok {
		t.Error("data.arguments missing")
	}
}

func TestToolsCallUnknownTool(t *testing.T) {
	s := NewService(ads.NewRegistry(ads.Config{DeveloperToken: "tok"}))

	resp := s.Dispatch(context.Background(), request("tools/call", "1", mcp.M{"name": "nope"}))
	if resp == nil || resp.Error == nil {
		t.Fatal("want error response")
	}
	if resp.Error.Message != "Error executing tool nope: Unknown tool: nope" {
		t.Errorf("Message = %q", resp.Error.Message)
	}
}

func TestToolsCallRegistryPanicContained(t *testing.T) {
	s := NewService(&stubRegistry{panicCall: true})

	resp := s.Dispatch(context.Background(), request("tools/call", "1", mcp.M{"name": "search"}))
	if resp == nil || resp.Error == nil {
		t.Fatal("want error response")
	}
	if resp.Error.Code != mcp.ErrInternalError.Code {
		t.Errorf("Code = %d", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "tool exploded") {
		t.Errorf("Message = %q", resp.Error.Message)
	}
}

func TestToolsCallNilRegistry(t *testing.T) {
	s := NewService(nil)

	resp := s.Dispatch(context.Background(), request("tools/call", "1", mcp.M{"name": "search"}))
	if resp == nil || resp.Error == nil {
		t.Fatal("want error response")
	}
	if !strings.Contains(resp.Error.Message, "registry not configured") {
		t.Errorf("Message = %q", resp.Error.Message)
	}
}

func TestResourcesListEmpty(t *testing.T) {
	s := NewService(&stubRegistry{})

	resp := s.Dispatch(context.Background(), request("resources/list", "7", nil))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"jsonrpc":"2.0","id":7,"result":{"resources":[]}}`
	if string(b) != want {
		t.Errorf("resources/list = %s, want %s", b, want)
	}
}
