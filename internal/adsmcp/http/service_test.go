package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adsmcp "github.com/jacsander/google-ads-mcp-server/internal/adsmcp/mcp"
)

type testConfig struct{}

func (testConfig) GetHTTPAddr() string { return "127.0.0.1:0" }

func newTestService() *Service {
	return NewService(testConfig{}, adsmcp.NewService(nil))
}

func doRequest(s *Service, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.GetRouter().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(newTestService(), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload["status"] != "healthy" || payload["service"] != "google-ads-mcp" {
		t.Errorf("payload = %v", payload)
	}
}

func TestNotificationGets204(t *testing.T) {
	for _, path := range []string{"/", "/messages"} {
		w := doRequest(newTestService(), http.MethodPost, path,
			`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
		if w.Code != http.StatusNoContent {
			t.Errorf("%s: status = %d, want 204", path, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("%s: body = %q, want empty", path, w.Body.String())
		}
	}
}

func TestMalformedBodyGets400(t *testing.T) {
	w := doRequest(newTestService(), http.MethodPost, "/", `{"jsonrpc":"2.0",`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	want := `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`
	if w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}

func TestResourcesListExactBody(t *testing.T) {
	w := doRequest(newTestService(), http.MethodPost, "/messages",
		`{"jsonrpc":"2.0","method":"resources/list","id":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	want := `{"jsonrpc":"2.0","id":7,"result":{"resources":[]}}`
	if w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}

func TestToolsListOverHTTP(t *testing.T) {
	w := doRequest(newTestService(), http.MethodPost, "/",
		`{"jsonrpc":"2.0","method":"tools/list","id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{`"search"`, `"list_accessible_customers"`} {
		if !strings.Contains(body, name) {
			t.Errorf("tools/list missing %s: %s", name, body)
		}
	}
}

func TestInitializeOverHTTP(t *testing.T) {
	w := doRequest(newTestService(), http.MethodPost, "/",
		`{"jsonrpc":"2.0","method":"initialize","id":0,"params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"agent","version":"1"}}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"protocolVersion":"2024-11-05"`) {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, `"serverInfo"`) {
		t.Errorf("body = %s", body)
	}
}

func TestUnknownMethodOverHTTP(t *testing.T) {
	w := doRequest(newTestService(), http.MethodPost, "/",
		`{"jsonrpc":"2.0","method":"ping","id":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, protocol errors still ride on 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"code":-32601`) {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, `"Method not found: ping"`) {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, `"id":3`) {
		t.Errorf("body = %s", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	w := doRequest(newTestService(), http.MethodOptions, "/", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestSSEFirstEventAndDisconnect(t *testing.T) {
	s := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/sse", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	// The canceled context makes the keep-alive loop exit right after the
	// connection event, so the handler returns instead of blocking.
	s.GetRouter().ServeHTTP(w, req)

	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/event-stream") {
		t.Errorf("Content-Type = %q", got)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "data: ") {
		t.Fatalf("body = %q", body)
	}
	var event map[string]string
	payload := strings.TrimPrefix(strings.Split(body, "\n")[0], "data: ")
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("first event not JSON: %v", err)
	}
	if event["type"] != "connection" || event["status"] != "connected" {
		t.Errorf("event = %v", event)
	}
	if !strings.Contains(event["note"], "POST /messages") {
		t.Errorf("note = %q", event["note"])
	}
}
