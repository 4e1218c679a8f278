package adsmcp

import (
	"path/filepath"
	"strings"
	"testing"
)

func setCheckEnv(t *testing.T, values map[string]string) {
	t.Helper()
	keys := []string{
		"GOOGLE_ADS_DEVELOPER_TOKEN",
		"GOOGLE_ADS_CLIENT_ID",
		"GOOGLE_ADS_CLIENT_SECRET",
		"GOOGLE_ADS_REFRESH_TOKEN",
		"GOOGLE_ADS_LOGIN_CUSTOMER_ID",
		"GOOGLE_PROJECT_ID",
		"PORT",
		"GOOGLE_APPLICATION_CREDENTIALS",
	}
	for _, key := range keys {
		t.Setenv(key, values[key])
	}
	t.Setenv("GOOGLE_ADS_MCP_DIR", t.TempDir())
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		required  bool
		sensitive bool
		ok        bool
		want      string
	}{
		{"set sensitive", "super-secret-value", false, true, true, "✓ KEY is set: super-secr..."},
		{"set plain", "1234567890", false, false, true, "✓ KEY is set: 1234567890"},
		{"missing required", "", true, false, false, "✗ KEY is not set (REQUIRED)"},
		{"missing optional", "", false, false, true, "○ KEY is not set (optional)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			ok := checkValue(&b, "KEY", tt.value, tt.required, tt.sensitive)
			if ok != tt.ok {
				t.Errorf("checkValue() ok = %v, want %v", ok, tt.ok)
			}
			if got := strings.TrimSpace(b.String()); got != tt.want {
				t.Errorf("checkValue() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandCheckPasses(t *testing.T) {
	setCheckEnv(t, map[string]string{
		"GOOGLE_ADS_DEVELOPER_TOKEN": "dev-token-abcdef",
		"GOOGLE_ADS_CLIENT_ID":       "12345.apps.googleusercontent.com",
		"GOOGLE_ADS_CLIENT_SECRET":   "GOCSPX-abcdefghijk",
		"GOOGLE_ADS_REFRESH_TOKEN":   "1//0remember-me-refresh",
	})

	m := New()
	ret, err := m.CommandCheck("", nil)
	if err != nil {
		t.Fatalf("CommandCheck() error = %v", err)
	}
	if !strings.Contains(ret, "✓ All required checks passed!") {
		t.Errorf("report missing pass verdict:\n%s", ret)
	}
	if !strings.Contains(ret, "✓ OAuth refresh token credentials are configured") {
		t.Errorf("report missing credentials line:\n%s", ret)
	}
	if strings.Contains(ret, "1//0remember-me-refresh") {
		t.Errorf("report leaks the refresh token:\n%s", ret)
	}
	if !strings.Contains(ret, "1//0rememb...") {
		t.Errorf("report missing masked refresh token:\n%s", ret)
	}
}

func TestCommandCheckFailsWithoutDeveloperToken(t *testing.T) {
	setCheckEnv(t, map[string]string{
		"GOOGLE_APPLICATION_CREDENTIALS": filepath.Join(t.TempDir(), "missing.json"),
	})

	m := New()
	ret, err := m.CommandCheck("", nil)
	if err == nil {
		t.Fatal("CommandCheck() error = nil, want failure")
	}
	if !strings.Contains(ret, "✗ GOOGLE_ADS_DEVELOPER_TOKEN is not set (REQUIRED)") {
		t.Errorf("report missing developer token failure:\n%s", ret)
	}
	if !strings.Contains(ret, "✗ Credentials file not found") {
		t.Errorf("report missing credentials file failure:\n%s", ret)
	}
	if !strings.Contains(ret, "✗ Some required checks failed.") {
		t.Errorf("report missing fail verdict:\n%s", ret)
	}
}
