package mcp

import (
	"github.com/jacsander/google-ads-mcp-server/internal/ads"
	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// Server identity returned by initialize. The payload is fixed, so repeated
// initializations are byte-identical.
var (
	InitializeResponse = mcp.InitializeResponse{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    mcp.DefaultCapabilities,
		ServerInfo: mcp.ServerInfo{
			Name:    "google-ads-mcp",
			Version: "0.0.1",
		},
	}
)

// FallbackTools returns the static descriptors served when the registry
// cannot answer. They are the canonical definitions, so a degraded server
// still advertises the same contract.
func FallbackTools() []mcp.Tool {
	return ads.Definitions()
}
