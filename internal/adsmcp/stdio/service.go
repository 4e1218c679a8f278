package stdio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp/conf"
	"github.com/jacsander/google-ads-mcp-server/internal/errors"
	"github.com/jacsander/google-ads-mcp-server/pkg/version"
)

// Service serves the Google Ads tools over stdio for clients that spawn
// the server as a subprocess instead of talking HTTP. Logs stay on stderr
// so stdout carries nothing but protocol frames.
type Service struct {
	registry Registry
	server   *server.MCPServer
}

func NewService(registry Registry) *Service {
	s := &Service{registry: registry}
	s.server = server.NewMCPServer(conf.AppName, version.Version)
	s.server.AddTool(SearchTool, s.handleSearch)
	s.server.AddTool(ListAccessibleCustomersTool, s.handleListAccessibleCustomers)
	return s
}

// Run blocks serving stdin and stdout until the stream closes.
func (s *Service) Run() error {
	return server.ServeStdio(s.server)
}

var SearchTool = mcp.NewTool(
	ads.ToolSearch,
	mcp.WithDescription("Retrieves information about the Google Ads account using GAQL queries"),
	mcp.WithString("customer_id", mcp.Required(), mcp.Description("The Google Ads customer id, ten digits with or without dashes")),
	mcp.WithString("resource", mcp.Required(), mcp.Description("The resource to query, e.g. campaign, ad_group, customer")),
	mcp.WithArray("fields", mcp.Required(), mcp.Description("Field paths to select, e.g. campaign.id, metrics.clicks"), mcp.Items(map[string]any{"type": "string"})),
	mcp.WithArray("conditions", mcp.Description("Filter conditions joined with AND, e.g. campaign.status = 'ENABLED'"), mcp.Items(map[string]any{"type": "string"})),
	mcp.WithArray("orderings", mcp.Description("Result orderings, e.g. metrics.clicks DESC"), mcp.Items(map[string]any{"type": "string"})),
	mcp.WithString("limit", mcp.Description("Maximum number of rows to return")),
)

var ListAccessibleCustomersTool = mcp.NewTool(
	ads.ToolListAccessibleCustomers,
	mcp.WithDescription("Returns ids of customers directly accessible by the user authenticating the call"),
)

func (s *Service) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outcome, err := s.registry.CallTool(ctx, ads.ToolSearch, request.GetArguments())
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		return errors.ErrMCPTool(fmt.Errorf("%s", ads.Enrich(err))), nil
	}
	return textResult(outcome), nil
}

func (s *Service) handleListAccessibleCustomers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outcome, err := s.registry.CallTool(ctx, ads.ToolListAccessibleCustomers, request.GetArguments())
	if err != nil {
		log.Error().Err(err).Msg("list accessible customers failed")
		return errors.ErrMCPTool(fmt.Errorf("%s", ads.Enrich(err))), nil
	}
	return textResult(outcome), nil
}

func textResult(outcome interface{}) *mcp.CallToolResult {
	text, ok := outcome.(string)
	if !ok {
		b, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			text = fmt.Sprintf("%v", outcome)
		} else {
			text = string(b)
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}
