package adsmcp

import (
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	// windows only
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.PersistentPreRun = initLog
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command execution failed")
	}
}

var rootCmd = &cobra.Command{
	Use:     "google-ads-mcp",
	Short:   "MCP server for the Google Ads API",
	Long:    `MCP server exposing Google Ads reporting tools to AI agents over HTTP and stdio`,
	Example: `google-ads-mcp server`,
	Args:    cobra.MinimumNArgs(0),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Run: Root,
}

// Root starts the HTTP server, which is what container deployments run.
func Root(cmd *cobra.Command, args []string) {
	m := adsmcp.New()
	if err := m.CommandHTTPServer("", nil); err != nil {
		log.Err(err).Msg("failed to run server")
	}
}
