package adsmcp

import (
	"fmt"

	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.Flags().StringVarP(&accountsConfigPath, "config", "c", "", "config dir")
}

var accountsConfigPath string

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the Google Ads accounts the credentials can access",
	Run: func(cmd *cobra.Command, args []string) {
		m := adsmcp.New()
		ret, err := m.CommandAccounts(accountsConfigPath, nil)
		if err != nil {
			log.Err(err).Msg("failed to list accounts")
			return
		}
		fmt.Println(ret)
	},
}
