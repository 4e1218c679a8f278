package adsmcp

import (
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stdioCmd)
	stdioCmd.Flags().StringVarP(&stdioConfigPath, "config", "c", "", "config dir")
}

var stdioConfigPath string

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	Run: func(cmd *cobra.Command, args []string) {
		m := adsmcp.New()
		if err := m.CommandStdioServer(stdioConfigPath, nil); err != nil {
			log.Err(err).Msg("stdio server exited")
			return
		}
	},
}
