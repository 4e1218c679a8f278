package adsmcp

import (
	"fmt"
	"os"

	"github.com/jacsander/google-ads-mcp-server/internal/adsmcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "config dir")
}

var checkConfigPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and credentials",
	Run: func(cmd *cobra.Command, args []string) {
		m := adsmcp.New()
		ret, err := m.CommandCheck(checkConfigPath, nil)
		if ret != "" {
			fmt.Println(ret)
		}
		if err != nil {
			if ret == "" {
				log.Err(err).Msg("check failed")
			}
			os.Exit(1)
		}
	},
}
