package scenario

import (
	"github.com/appspec/harness/cli/functions"
	"github.com/spf13/cobra"
)

var scenarioGetCmd = &cobra.Command{
	Use:   "get [NAME]",
	Args:  cobra.ExactArgs(1),
	Short: "Get a scenario by name",
	Long:  `Get a scenario by name`,
	Run: func(cmd *cobra.Command, args []string) {
		functions.PrettyPrint(functions.GetScenario(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(scenarioGetCmd)
}
