package ads

import (
	"context"
	"fmt"
	"sync"

	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// Tool names.
const (
	ToolSearch                  = "search"
	ToolListAccessibleCustomers = "list_accessible_customers"
)

// toolDefinitions are the canonical descriptors for every registered tool.
// The limit property declares a union type; schema normalization collapses
// it to a string before the list is published.
var toolDefinitions = []mcp.Tool{
	{
		Name:        ToolSearch,
		Description: "Retrieves information about the Google Ads account using GAQL queries",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"customer_id": mcp.M{
					"type":        "string",
					"description": "The Google Ads customer id, ten digits with or without dashes",
				},
				"resource": mcp.M{
					"type":        "string",
					"description": "The resource to query, e.g. campaign, ad_group, customer",
				},
				"fields": mcp.M{
					"type":        "array",
					"items":       mcp.M{"type": "string"},
					"description": "Field paths to select, e.g. campaign.id, metrics.clicks",
				},
				"conditions": mcp.M{
					"type":        "array",
					"items":       mcp.M{"type": "string"},
					"description": "Filter conditions joined with AND, e.g. campaign.status = 'ENABLED'",
				},
				"orderings": mcp.M{
					"type":        "array",
					"items":       mcp.M{"type": "string"},
					"description": "Result orderings, e.g. metrics.clicks DESC",
				},
				"limit": mcp.M{
					"type":        []string{"integer", "string"},
					"description": "Maximum number of rows to return",
				},
			},
			Required: []string{"customer_id", "fields", "resource"},
		},
	},
	{
		Name:        ToolListAccessibleCustomers,
		Description: "Returns ids of customers directly accessible by the user authenticating the call",
		InputSchema: mcp.ToolSchema{
			Type:       "object",
			Properties: mcp.M{},
			Required:   []string{},
		},
	},
}

// Definitions returns the canonical tool descriptors. The returned slice is
// the caller's to reorder; the schemas themselves are shared and read-only.
func Definitions() []mcp.Tool {
	out := make([]mcp.Tool, len(toolDefinitions))
	copy(out, toolDefinitions)
	return out
}

// Registry exposes the Google Ads tools behind the dispatcher's registry
// interface. The API client is built on first use and shared afterwards,
// so a misconfigured server still starts and lists tools.
type Registry struct {
	client func() (*Client, error)
}

// NewRegistry builds a registry over the given API configuration. No
// network or credential work happens until the first tool call.
func NewRegistry(conf Config) *Registry {
	return &Registry{
		client: sync.OnceValues(func() (*Client, error) {
			return NewClient(context.Background(), conf)
		}),
	}
}

// ListTools implements the registry side of the tool listing.
func (r *Registry) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	return Definitions(), nil
}

// CallTool runs a tool by name. Unknown names are an error the caller
// surfaces verbatim.
func (r *Registry) CallTool(ctx context.Context, name string, args mcp.M) (interface{}, error) {
	switch name {
	case ToolSearch:
		return r.search(ctx, args)
	case ToolListAccessibleCustomers:
		return r.listAccessibleCustomers(ctx)
	default:
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
}

func (r *Registry) search(ctx context.Context, args mcp.M) (interface{}, error) {
	sa, err := ParseSearchArgs(args)
	if err != nil {
		return nil, err
	}
	client, err := r.client()
	if err != nil {
		return nil, err
	}
	rows, err := client.Search(ctx, sa.CustomerID, sa.Query())
	if err != nil {
		return nil, err
	}
	flattened := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		flattened = append(flattened, FlattenRow(row, sa.Fields))
	}
	return flattened, nil
}

func (r *Registry) listAccessibleCustomers(ctx context.Context) (interface{}, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}
	names, err := client.ListAccessibleCustomers(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, CustomerIDFromResourceName(name))
	}
	return ids, nil
}
