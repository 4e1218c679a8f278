package adsmcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp/conf"
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp/http"
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp/mcp"
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp/stdio"
	"github.com/jacsander/google-ads-mcp-server/pkg/config"
	"github.com/jacsander/google-ads-mcp-server/pkg/util"
	"github.com/rs/zerolog/log"
)

// Manager wires configuration and the Google Ads tool registry to the
// transports the CLI commands expose.
type Manager struct {
	sc  *conf.ServerConfig
	scm *config.Manager

	// Services
	registry *ads.Registry
	mcp      *mcp.Service
	http     *http.Service
	stdio    *stdio.Service
}

func New() *Manager {
	return &Manager{}
}

func (m *Manager) loadConfig(configPath string, cmdConf map[string]any) error {
	var err error
	m.sc, m.scm, err = conf.LoadServerConfig(configPath, cmdConf)
	return err
}

// CommandHTTPServer runs the JSON-RPC server until the listener fails or
// the process receives an interrupt, then drains in-flight requests.
// Missing credentials do not prevent startup; tool calls report them.
func (m *Manager) CommandHTTPServer(configPath string, cmdConf map[string]any) error {

	if err := m.loadConfig(configPath, cmdConf); err != nil {
		return err
	}

	if m.sc.DeveloperToken == "" {
		log.Warn().Msg("GOOGLE_ADS_DEVELOPER_TOKEN is not set, tool calls will fail until it is configured")
	}

	m.registry = ads.NewRegistry(m.sc.GetAdsConfig())
	m.mcp = mcp.NewService(m.registry)
	m.http = http.NewService(m.sc, m.mcp)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		m.http.Stop()
	}()

	return m.http.ListenAndServe()
}

// CommandStdioServer speaks MCP over stdin/stdout for desktop clients.
func (m *Manager) CommandStdioServer(configPath string, cmdConf map[string]any) error {

	if err := m.loadConfig(configPath, cmdConf); err != nil {
		return err
	}

	if m.sc.DeveloperToken == "" {
		log.Warn().Msg("GOOGLE_ADS_DEVELOPER_TOKEN is not set, tool calls will fail until it is configured")
	}

	m.registry = ads.NewRegistry(m.sc.GetAdsConfig())
	m.stdio = stdio.NewService(m.registry)

	return m.stdio.Run()
}

// CommandAccounts lists the customer accounts the configured credentials
// can access, which is the quickest way to confirm a working setup.
func (m *Manager) CommandAccounts(configPath string, cmdConf map[string]any) (string, error) {

	if err := m.loadConfig(configPath, cmdConf); err != nil {
		return "", err
	}

	ctx := context.Background()
	client, err := ads.NewClient(ctx, m.sc.GetAdsConfig())
	if err != nil {
		return "", err
	}

	names, err := client.ListAccessibleCustomers(ctx)
	if err != nil {
		return "", fmt.Errorf("%s", ads.Enrich(err))
	}

	if len(names) == 0 {
		return "No accessible customer accounts found.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Accessible customer accounts (%d):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", ads.CustomerIDFromResourceName(name))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// CommandCheck verifies the resolved configuration and reports each
// requirement with a pass, fail or optional marker.
func (m *Manager) CommandCheck(configPath string, cmdConf map[string]any) (string, error) {

	if err := m.loadConfig(configPath, cmdConf); err != nil {
		return "", err
	}

	var b strings.Builder
	divider := strings.Repeat("=", 60)
	section := strings.Repeat("-", 60)

	fmt.Fprintf(&b, "%s\nGoogle Ads MCP Server - Setup Verification\n%s\n\n", divider, divider)

	ok := true

	b.WriteString("Environment:\n" + section + "\n")
	ok = checkValue(&b, "GOOGLE_ADS_DEVELOPER_TOKEN", m.sc.DeveloperToken, true, true) && ok
	checkValue(&b, "GOOGLE_ADS_CLIENT_ID", m.sc.ClientID, false, true)
	checkValue(&b, "GOOGLE_ADS_CLIENT_SECRET", m.sc.ClientSecret, false, true)
	checkValue(&b, "GOOGLE_ADS_REFRESH_TOKEN", m.sc.RefreshToken, false, true)
	checkValue(&b, "GOOGLE_ADS_LOGIN_CUSTOMER_ID", m.sc.LoginCustomerID, false, false)
	checkValue(&b, "GOOGLE_PROJECT_ID", m.sc.ProjectID, false, false)
	b.WriteString("\n")

	b.WriteString("Credentials:\n" + section + "\n")
	ok = m.checkCredentials(&b) && ok
	b.WriteString("\n")

	b.WriteString(divider + "\n")
	if ok {
		b.WriteString("✓ All required checks passed!\n\n")
		b.WriteString("Next steps:\n")
		b.WriteString("1. Run the accounts command to confirm API access\n")
		b.WriteString("2. Configure your MCP client (Cursor, Claude Desktop, etc.)\n")
	} else {
		b.WriteString("✗ Some required checks failed. Please fix the issues above.\n")
	}
	b.WriteString(divider)

	if !ok {
		return b.String(), fmt.Errorf("setup verification failed")
	}
	return b.String(), nil
}

func checkValue(b *strings.Builder, name, value string, required, sensitive bool) bool {
	if value != "" {
		display := value
		if sensitive {
			display = util.Mask(value)
		}
		fmt.Fprintf(b, "✓ %s is set: %s\n", name, display)
		return true
	}
	if required {
		fmt.Fprintf(b, "✗ %s is not set (REQUIRED)\n", name)
		return false
	}
	fmt.Fprintf(b, "○ %s is not set (optional)\n", name)
	return true
}

// checkCredentials accepts either a refresh token triple or application
// default credentials, matching what the API client will do at runtime.
func (m *Manager) checkCredentials(b *strings.Builder) bool {
	creds := m.sc.GetAdsConfig().Credentials
	if creds.HasRefreshToken() {
		b.WriteString("✓ OAuth refresh token credentials are configured\n")
		return true
	}

	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(b, "✓ Credentials file exists: %s\n", path)
			return true
		}
		fmt.Fprintf(b, "✗ Credentials file not found: %s\n", path)
		return false
	}

	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "gcloud", "application_default_credentials.json")
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(b, "✓ Application default credentials found: %s\n", path)
			return true
		}
	}

	b.WriteString("✗ No credentials found: set GOOGLE_ADS_CLIENT_ID, GOOGLE_ADS_CLIENT_SECRET and GOOGLE_ADS_REFRESH_TOKEN, or GOOGLE_APPLICATION_CREDENTIALS\n")
	return false
}
