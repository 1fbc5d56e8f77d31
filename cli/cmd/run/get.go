package run

import (
	"github.com/appspec/harness/cli/functions"
	"github.com/spf13/cobra"
)

var runGetCmd = &cobra.Command{
	Use:   "get [ID]",
	Args:  cobra.ExactArgs(1),
	Short: "Get a run by ID",
	Long:  `Get a run by ID`,
	Run: func(cmd *cobra.Command, args []string) {
		functions.PrettyPrint(functions.GetRun(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(runGetCmd)
}
