package adsmcp

import (
	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&serverAddr, "addr", "a", "", "listen address (host:port), defaults to 0.0.0.0:8080 or $PORT")
	serverCmd.Flags().StringVarP(&serverConfigPath, "config", "c", "", "config dir")
}

var (
	serverAddr       string
	serverConfigPath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP JSON-RPC server",
	Run: func(cmd *cobra.Command, args []string) {
		cmdConf := map[string]any{}
		if serverAddr != "" {
			cmdConf["http_addr"] = serverAddr
		}
		m := adsmcp.New()
		if err := m.CommandHTTPServer(serverConfigPath, cmdConf); err != nil {
			log.Err(err).Msg("failed to start server")
			return
		}
	},
}
