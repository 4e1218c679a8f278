package adsmcp

import (
	"fmt"

	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVarP(&tokenSecretFile, "secret-file", "f", "", "OAuth client secret file from Google Cloud Console")
}

var tokenSecretFile string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate an OAuth refresh token for the Google Ads API",
	Run: func(cmd *cobra.Command, args []string) {
		m := adsmcp.New()
		ret, err := m.CommandToken(tokenSecretFile)
		if err != nil {
			log.Err(err).Msg("token flow failed")
			return
		}
		fmt.Println(ret)
	},
}
