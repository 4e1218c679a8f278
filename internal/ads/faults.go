package ads

import (
	stderrors "errors"
	"strings"
)

// FaultCode identifies a recognizable failure class in Google Ads API
// responses. The set is closed; anything outside it passes through
// unclassified.
type FaultCode string

const (
	// FaultNotAdsUser means the OAuth identity is not linked to any
	// Google Ads account.
	FaultNotAdsUser FaultCode = "NOT_ADS_USER"

	// FaultTokenRevoked means the refresh token is expired or revoked.
	FaultTokenRevoked FaultCode = "TOKEN_REVOKED"

	// FaultDeveloperToken covers unapproved, prohibited or malformed
	// developer tokens.
	FaultDeveloperToken FaultCode = "DEVELOPER_TOKEN"

	// FaultMissingField means the API rejected the request because a
	// required field was absent.
	FaultMissingField FaultCode = "REQUIRED_FIELD_MISSING"

	// FaultBadCustomerID means the customer id was malformed or unknown.
	FaultBadCustomerID FaultCode = "INVALID_CUSTOMER_ID"

	// FaultBadQuery means the GAQL query was rejected.
	FaultBadQuery FaultCode = "INVALID_QUERY"
)

// faultMatchers pairs each fault code with the substrings that identify it
// in API error codes and rendered messages. Order matters: the first match
// wins, and NOT_ADS_USER must be checked before the generic auth matchers.
var faultMatchers = []struct {
	code FaultCode
	subs []string
}{
	{FaultNotAdsUser, []string{"NOT_ADS_USER"}},
	{FaultTokenRevoked, []string{"invalid_grant", "Token has been expired or revoked"}},
	{FaultDeveloperToken, []string{"DEVELOPER_TOKEN", "developer token"}},
	{FaultMissingField, []string{"REQUIRED_FIELD_MISSING", "MISSING_REQUIRED_FIELD"}},
	{FaultBadCustomerID, []string{"INVALID_CUSTOMER_ID", "CUSTOMER_NOT_FOUND"}},
	{FaultBadQuery, []string{"QueryError", "INVALID_QUERY", "UNRECOGNIZED_FIELD", "BAD_FIELD_NAME"}},
}

var faultRemediations = map[FaultCode]string{
	FaultNotAdsUser:     "The authenticated Google account is not linked to any Google Ads account. Sign in with a user that has Google Ads access, or set GOOGLE_ADS_LOGIN_CUSTOMER_ID to a manager account that grants access",
	FaultTokenRevoked:   "The refresh token is expired or revoked. Generate a new one with the token command and update GOOGLE_ADS_REFRESH_TOKEN",
	FaultDeveloperToken: "Check GOOGLE_ADS_DEVELOPER_TOKEN in the API Center of your manager account. Test tokens only work against test accounts until approved for production use",
	FaultMissingField:   "A required field is missing from the request. Make sure customer_id, resource and fields are all present",
	FaultBadCustomerID:  "Customer ids are ten digits with no dashes, e.g. 1234567890",
	FaultBadQuery:       "The GAQL query was rejected. Verify the resource name and field paths against the Google Ads query reference",
}

// Classify maps an error onto a fault code. Structured error codes from an
// APIError are checked first; the rendered message is the fallback, which
// also covers OAuth transport errors that never carry Google Ads error
// details.
func Classify(err error) (FaultCode, bool) {
	if err == nil {
		return "", false
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		for _, code := range apiErr.ErrorCodes() {
			if fault, ok := matchFault(code); ok {
				return fault, true
			}
		}
	}

	return matchFault(err.Error())
}

func matchFault(text string) (FaultCode, bool) {
	for _, m := range faultMatchers {
		for _, sub := range m.subs {
			if strings.Contains(text, sub) {
				return m.code, true
			}
		}
	}
	return "", false
}

// Remediation returns the operator guidance for a fault code, or "" for an
// unknown code.
func Remediation(code FaultCode) string {
	return faultRemediations[code]
}

// Enrich renders an error message with remediation guidance appended when
// the error classifies to a known fault. Unclassified errors come back
// unchanged.
func Enrich(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	code, ok := Classify(err)
	if !ok {
		return msg
	}
	sep := ". "
	if strings.HasSuffix(msg, ".") {
		sep = " "
	}
	return msg + sep + Remediation(code)
}
