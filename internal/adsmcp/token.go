package adsmcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp/conf"
	"github.com/jacsander/google-ads-mcp-server/pkg/util"
)

const (
	// EnvClientSecretFile points at the OAuth client file downloaded from
	// Google Cloud Console when it is not in the working directory.
	EnvClientSecretFile = "GOOGLE_OAUTH_CLIENT_SECRET_FILE"

	clientSecretPattern = `^client_secret.*\.(json|txt)$`

	tokenRedirectAddr = "localhost:8080"
	tokenRedirectURL  = "http://localhost:8080/"
)

type oauthClient struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	AuthURI      string   `json:"auth_uri"`
	TokenURI     string   `json:"token_uri"`
	RedirectURIs []string `json:"redirect_uris"`
}

type clientSecretFile struct {
	Web       *oauthClient `json:"web"`
	Installed *oauthClient `json:"installed"`
}

// CommandToken walks the OAuth consent flow on this machine and saves the
// refresh token the server needs. The sign-in account must have access to
// Google Ads accounts or every API call will fail with NOT_ADS_USER.
func (m *Manager) CommandToken(secretFile string) (string, error) {

	path, err := findClientSecretFile(secretFile)
	if err != nil {
		return "", err
	}

	client, err := loadOAuthClient(path)
	if err != nil {
		return "", err
	}

	if len(client.RedirectURIs) > 0 && !hasLocalRedirect(client.RedirectURIs) {
		fmt.Printf("WARNING: %s is not among the OAuth client redirect URIs %v\n", tokenRedirectURL, client.RedirectURIs)
		fmt.Println("Add it in Google Cloud Console under APIs & Services > Credentials, then retry if the flow fails.")
		fmt.Println()
	}

	oc := client.oauthConfig()
	state := uuid.New().String()
	authURL := oc.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"))

	code, err := waitForAuthCode(authURL, state)
	if err != nil {
		return "", err
	}

	token, err := oc.Exchange(context.Background(), code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return "", fmt.Errorf("no refresh token received: revoke the app's access at https://myaccount.google.com/permissions and run this command again")
	}

	if err := saveCredentials(conf.CredentialsFileName, client, token.RefreshToken); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("OAuth credentials obtained successfully!\n\n")
	fmt.Fprintf(&b, "Client ID: %s\n", client.ClientID)
	fmt.Fprintf(&b, "Client Secret: %s\n", util.Mask(client.ClientSecret))
	fmt.Fprintf(&b, "Refresh Token: %s\n\n", util.Mask(token.RefreshToken))
	fmt.Fprintf(&b, "Credentials saved to: %s\n", conf.CredentialsFileName)
	b.WriteString("Do not commit this file to version control.")
	return b.String(), nil
}

func findClientSecretFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv(EnvClientSecretFile); env != "" {
		return env, nil
	}
	if files, err := util.FindFilesWithPatterns(".", clientSecretPattern, false); err == nil && len(files) > 0 {
		return files[0], nil
	}
	return "", fmt.Errorf("client secret file not found: pass --secret-file, set %s, or place a client_secret_*.json file in the current directory", EnvClientSecretFile)
}

func loadOAuthClient(path string) (*oauthClient, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client secret file: %w", err)
	}

	var f clientSecretFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse client secret file %s: %w", path, err)
	}

	switch {
	case f.Web != nil:
		return f.Web, nil
	case f.Installed != nil:
		return f.Installed, nil
	}
	return nil, fmt.Errorf("client secret file %s has neither a web nor an installed section", path)
}

func (c *oauthClient) oauthConfig() *oauth2.Config {
	endpoint := google.Endpoint
	if c.AuthURI != "" && c.TokenURI != "" {
		endpoint = oauth2.Endpoint{AuthURL: c.AuthURI, TokenURL: c.TokenURI}
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  tokenRedirectURL,
		Scopes:       []string{ads.AdsScope},
	}
}

func hasLocalRedirect(uris []string) bool {
	for _, uri := range uris {
		if uri == tokenRedirectURL || uri+"/" == tokenRedirectURL {
			return true
		}
	}
	return false
}

// waitForAuthCode serves a single redirect on localhost and blocks until
// the browser delivers an authorization code or an error.
func waitForAuthCode(authURL, state string) (string, error) {

	type outcome struct {
		code string
		err  error
	}
	ch := make(chan outcome, 1)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		if errMsg := c.Query("error"); errMsg != "" {
			c.String(http.StatusOK, "Authorization failed: %s. You may close this window.", errMsg)
			ch <- outcome{err: fmt.Errorf("authorization failed: %s", errMsg)}
			return
		}
		if c.Query("state") != state {
			c.String(http.StatusBadRequest, "State mismatch. You may close this window.")
			ch <- outcome{err: fmt.Errorf("oauth state mismatch on redirect")}
			return
		}
		code := c.Query("code")
		if code == "" {
			c.String(http.StatusBadRequest, "Missing authorization code. You may close this window.")
			ch <- outcome{err: fmt.Errorf("redirect did not carry an authorization code")}
			return
		}
		c.String(http.StatusOK, "Authentication successful! You may close this window.")
		ch <- outcome{code: code}
	})

	listener, err := net.Listen("tcp", tokenRedirectAddr)
	if err != nil {
		return "", fmt.Errorf("port 8080 is not available, close the application using it and retry: %w", err)
	}

	server := &http.Server{Handler: router}
	go server.Serve(listener)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	fmt.Println("Visit this URL to authorize the application:")
	fmt.Println()
	fmt.Println("  " + authURL)
	fmt.Println()
	fmt.Println("Sign in with a Google account that has access to Google Ads accounts.")
	fmt.Println("Waiting for the browser redirect on " + tokenRedirectURL + " ...")

	result := <-ch
	if result.err != nil {
		return "", result.err
	}
	return result.code, nil
}

func saveCredentials(path string, client *oauthClient, refreshToken string) error {
	out := map[string]string{
		"client_id":     client.ClientID,
		"client_secret": client.ClientSecret,
		"refresh_token": refreshToken,
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
