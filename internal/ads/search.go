package ads

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/jacsander/google-ads-mcp-server/internal/errors"
	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// SearchArgs are the validated parameters of the search tool.
type SearchArgs struct {
	CustomerID string
	Resource   string
	Fields     []string
	Conditions []string
	Orderings  []string
	Limit      int
}

// ParseSearchArgs validates and coerces raw tool arguments. Limit arrives
// as a string from clients that follow the published schema, so it is
// coerced rather than type-asserted.
func ParseSearchArgs(args mcp.M) (SearchArgs, error) {
	var sa SearchArgs

	sa.CustomerID = strings.TrimSpace(cast.ToString(args["customer_id"]))
	if sa.CustomerID == "" {
		return sa, errors.RequiredParam("customer_id")
	}
	sa.Resource = strings.TrimSpace(cast.ToString(args["resource"]))
	if sa.Resource == "" {
		return sa, errors.RequiredParam("resource")
	}
	sa.Fields = toStringSlice(args["fields"])
	if len(sa.Fields) == 0 {
		return sa, errors.RequiredParam("fields")
	}
	sa.Conditions = toStringSlice(args["conditions"])
	sa.Orderings = toStringSlice(args["orderings"])
	sa.Limit = cast.ToInt(args["limit"])
	return sa, nil
}

func toStringSlice(v interface{}) []string {
	switch vv := v.(type) {
	case nil:
		return nil
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			out = append(out, cast.ToString(item))
		}
		return out
	case string:
		if vv == "" {
			return nil
		}
		return []string{vv}
	default:
		return nil
	}
}

// Query assembles the GAQL text. Conditions join with AND, orderings and
// fields with commas.
func (a SearchArgs) Query() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(a.Fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(a.Resource)
	if len(a.Conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(a.Conditions, " AND "))
	}
	if len(a.Orderings) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(a.Orderings, ", "))
	}
	if a.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", a.Limit)
	}
	return b.String()
}

type searchResponse struct {
	Results       []map[string]interface{} `json:"results"`
	NextPageToken string                   `json:"nextPageToken"`
}

// Search runs a GAQL query against one customer, following pagination
// until every row is collected.
func (c *Client) Search(ctx context.Context, customerID, query string) ([]map[string]interface{}, error) {
	id, err := NormalizeCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:search", c.endpoint, APIVersion, id)
	body := map[string]string{"query": query}

	var rows []map[string]interface{}
	for {
		var page searchResponse
		if err := c.post(ctx, url, body, &page); err != nil {
			return nil, err
		}
		rows = append(rows, page.Results...)
		if page.NextPageToken == "" {
			return rows, nil
		}
		body = map[string]string{"query": query, "pageToken": page.NextPageToken}
	}
}

// FlattenRow projects the requested field paths out of one API result row.
// REST payloads key nested objects with lowerCamelCase while GAQL field
// paths use snake_case, so each path segment is converted before lookup.
// Missing paths are skipped rather than filled with nulls.
func FlattenRow(row map[string]interface{}, fields []string) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if v, ok := lookupPath(row, field); ok {
			out[field] = v
		}
	}
	return out
}

func lookupPath(row map[string]interface{}, path string) (interface{}, bool) {
	var cur interface{} = row
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		v, ok := m[snakeToCamel(seg)]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	out := parts[0]
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		out += strings.ToUpper(part[:1]) + part[1:]
	}
	return out
}
