package adsmcp

import (
	"fmt"

	"github.com/jacsander/google-ads-mcp-server/pkg/version"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionM, "module", "m", false, "module version information")
}

var versionM bool
var versionCmd = &cobra.Command{
	Use:   "version [-m]",
	Short: "Show the version of google-ads-mcp",
	Run: func(cmd *cobra.Command, args []string) {
		if versionM {
			fmt.Println(version.GetMore(true))
		} else {
			fmt.Printf("google-ads-mcp %s\n", version.GetMore(false))
		}
	},
}
