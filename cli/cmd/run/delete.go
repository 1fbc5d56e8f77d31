package run

import (
	"github.com/appspec/harness/cli/functions"
	"github.com/spf13/cobra"
)

var runDeleteCmd = &cobra.Command{
	Use:   "delete [ID]",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a run and its rendered configs",
	Long:  `Delete a run and its rendered configs`,
	Run: func(cmd *cobra.Command, args []string) {
		functions.PrettyPrint(functions.DeleteRun(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(runDeleteCmd)
}
