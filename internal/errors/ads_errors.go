package errors

import (
	"fmt"
	"net/http"
)

// Credential errors

// CredentialsMissing is returned when no usable credential source exists.
func CredentialsMissing(cause error) *AppError {
	return New(ErrTypeAuth, "no Google Ads credentials found: set GOOGLE_ADS_CLIENT_ID, GOOGLE_ADS_CLIENT_SECRET and GOOGLE_ADS_REFRESH_TOKEN, or configure application default credentials", cause, http.StatusUnauthorized).WithStack()
}

// TokenRefreshFailed wraps an OAuth token refresh failure.
func TokenRefreshFailed(cause error) *AppError {
	return New(ErrTypeAuth, "failed to refresh OAuth access token", cause, http.StatusUnauthorized).WithStack()
}

// Google Ads API errors

// AdsRequestFailed wraps a transport-level Google Ads API failure.
func AdsRequestFailed(operation string, cause error) *AppError {
	return New(ErrTypeAds, fmt.Sprintf("google ads request failed: %s", operation), cause, http.StatusInternalServerError).WithStack()
}

// Configuration errors

// ConfigInvalid creates an invalid configuration error.
func ConfigInvalid(field string, cause error) *AppError {
	return New(ErrTypeConfig, fmt.Sprintf("invalid configuration: %s", field), cause, http.StatusInternalServerError).WithStack()
}

// ConfigMissing creates a missing configuration error.
func ConfigMissing(field string) *AppError {
	return New(ErrTypeConfig, fmt.Sprintf("missing configuration: %s", field), nil, http.StatusBadRequest).WithStack()
}

// Parameter validation errors

// RequiredParam creates a missing required parameter error.
func RequiredParam(param string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("required parameter missing: %s", param), nil, http.StatusBadRequest).WithStack()
}

// InvalidParam creates an invalid parameter error.
func InvalidParam(param string, reason string) *AppError {
	message := fmt.Sprintf("invalid parameter: %s", param)
	if reason != "" {
		message = fmt.Sprintf("%s (%s)", message, reason)
	}
	return New(ErrTypeInvalidArg, message, nil, http.StatusBadRequest).WithStack()
}

// InvalidCustomerID creates a malformed customer id error. Customer ids
// are ten digits with no dashes.
func InvalidCustomerID(id string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid customer id: %q (expected 10 digits, e.g. 1234567890)", id), nil, http.StatusBadRequest).WithStack()
}
