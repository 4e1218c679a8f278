package conf

import (
	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/pkg/util"
)

const (
	DefaultHTTPAddr = "0.0.0.0:8080"
)

type ServerConfig struct {
	HTTPAddr        string `mapstructure:"http_addr"`
	Port            string `mapstructure:"port"`
	DeveloperToken  string `mapstructure:"developer_token"`
	ClientID        string `mapstructure:"client_id"`
	ClientSecret    string `mapstructure:"client_secret"`
	RefreshToken    string `mapstructure:"refresh_token"`
	LoginCustomerID string `mapstructure:"login_customer_id"`
	ProjectID       string `mapstructure:"project_id"`
	Endpoint        string `mapstructure:"endpoint"`
}

// ServerDefaults registers every key so values bound only through the
// environment survive unmarshaling.
var ServerDefaults = map[string]any{
	"http_addr":         "",
	"port":              "",
	"developer_token":   "",
	"client_id":         "",
	"client_secret":     "",
	"refresh_token":     "",
	"login_customer_id": "",
	"project_id":        "",
	"endpoint":          "",
}

// GetHTTPAddr resolves the listen address. An explicit address wins, then
// the platform-injected PORT, then the default.
func (c *ServerConfig) GetHTTPAddr() string {
	if c.HTTPAddr != "" {
		return c.HTTPAddr
	}
	if c.Port != "" {
		return "0.0.0.0:" + c.Port
	}
	return DefaultHTTPAddr
}

// GetAdsConfig maps the server configuration onto the API client
// configuration.
func (c *ServerConfig) GetAdsConfig() ads.Config {
	return ads.Config{
		DeveloperToken:  c.DeveloperToken,
		LoginCustomerID: c.LoginCustomerID,
		Endpoint:        c.Endpoint,
		Credentials: ads.Credentials{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RefreshToken: c.RefreshToken,
		},
	}
}

// Masked returns a loggable view of the configuration with every secret
// truncated.
func (c *ServerConfig) Masked() map[string]string {
	return map[string]string{
		"http_addr":         c.GetHTTPAddr(),
		"developer_token":   util.Mask(c.DeveloperToken),
		"client_id":         util.Mask(c.ClientID),
		"client_secret":     util.Mask(c.ClientSecret),
		"refresh_token":     util.Mask(c.RefreshToken),
		"login_customer_id": c.LoginCustomerID,
		"project_id":        c.ProjectID,
	}
}
