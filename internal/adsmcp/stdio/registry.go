package stdio

import (
	"context"

	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// Registry is the slice of the tool registry the stdio transport needs.
// *ads.Registry satisfies it.
type Registry interface {
	CallTool(ctx context.Context, name string, args mcp.M) (interface{}, error)
}
