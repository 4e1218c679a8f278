package ads

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/jacsander/google-ads-mcp-server/internal/errors"
	"github.com/jacsander/google-ads-mcp-server/pkg/util"
)

const (
	// DefaultEndpoint is the Google Ads REST endpoint.
	DefaultEndpoint = "https://googleads.googleapis.com"

	// APIVersion is the Google Ads API version all calls target.
	APIVersion = "v21"
)

// Config carries everything needed to reach the Google Ads API.
type Config struct {
	DeveloperToken  string
	LoginCustomerID string
	Credentials     Credentials

	// Endpoint overrides DefaultEndpoint, for tests.
	Endpoint string
}

// Client is a minimal Google Ads REST client covering the calls the tools
// need. Authorization rides on the oauth2 transport.
type Client struct {
	endpoint        string
	developerToken  string
	loginCustomerID string
	http            *http.Client
}

// NewClient validates the configuration, resolves a token source and
// returns a ready client. The context is used for token refreshes over the
// client's whole lifetime, so callers should pass a long-lived one.
func NewClient(ctx context.Context, conf Config) (*Client, error) {
	if conf.DeveloperToken == "" {
		return nil, errors.ConfigMissing("GOOGLE_ADS_DEVELOPER_TOKEN")
	}

	ts, err := conf.Credentials.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := conf.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		endpoint:        strings.TrimRight(endpoint, "/"),
		developerToken:  conf.DeveloperToken,
		loginCustomerID: strings.ReplaceAll(conf.LoginCustomerID, "-", ""),
		http:            oauth2.NewClient(ctx, ts),
	}, nil
}

// NormalizeCustomerID strips dashes and whitespace from a customer id and
// validates the canonical ten-digit form.
func NormalizeCustomerID(id string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(id), "-", "")
	if len(cleaned) != 10 || !util.IsNumeric(cleaned) {
		return "", errors.InvalidCustomerID(id)
	}
	return cleaned, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.AdsRequestFailed(url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.AdsRequestFailed(url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if stderrors.As(err, &retrieveErr) {
			return errors.TokenRefreshFailed(err)
		}
		return errors.AdsRequestFailed(url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.AdsRequestFailed(url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.AdsRequestFailed(url, err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	return c.do(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) post(ctx context.Context, url string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, url, body, out)
}

// APIError is a decoded Google Ads API error response.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Details    []ErrorDetail
}

// ErrorDetail is one entry of the error details list, usually a
// GoogleAdsFailure with per-field errors.
type ErrorDetail struct {
	Type      string      `json:"@type"`
	Errors    []CodeError `json:"errors"`
	RequestID string      `json:"requestId"`
}

// CodeError pairs a structured error code with its message. The errorCode
// object maps an error category to an enum value, e.g.
// {"authenticationError": "NOT_ADS_USER"}.
type CodeError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("google ads api error %d", e.StatusCode)
	if e.Status != "" {
		msg += " " + e.Status
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if codes := e.ErrorCodes(); len(codes) > 0 {
		msg += " [" + strings.Join(codes, "; ") + "]"
	}
	return msg
}

// ErrorCodes flattens the structured error codes into "category.ENUM"
// strings, e.g. "authenticationError.NOT_ADS_USER".
func (e *APIError) ErrorCodes() []string {
	var codes []string
	for _, detail := range e.Details {
		for _, item := range detail.Errors {
			for category, value := range item.ErrorCode {
				codes = append(codes, category+"."+value)
			}
		}
	}
	return codes
}

func parseAPIError(statusCode int, body []byte) error {
	var wrapper struct {
		Error struct {
			Code    int           `json:"code"`
			Message string        `json:"message"`
			Status  string        `json:"status"`
			Details []ErrorDetail `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil || wrapper.Error.Message == "" {
		return &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
	}
	return &APIError{
		StatusCode: statusCode,
		Status:     wrapper.Error.Status,
		Message:    wrapper.Error.Message,
		Details:    wrapper.Error.Details,
	}
}
