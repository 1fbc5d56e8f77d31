package run

import (
	"github.com/appspec/harness/cli/functions"
	"github.com/spf13/cobra"
)

var runStatusCmd = &cobra.Command{
	Use:   "status [ID] [STATUS]",
	Args:  cobra.ExactArgs(2),
	Short: "Move a run to a new status",
	Long:  `Move a run to a new status (pending, running, passed, failed or aborted)`,
	Run: func(cmd *cobra.Command, args []string) {
		functions.PrettyPrint(functions.UpdateRunStatus(args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(runStatusCmd)
}
