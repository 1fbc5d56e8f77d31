package run

import (
	"os"
	"strings"
	"time"

	"github.com/appspec/harness/cli/functions"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var runListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all runs",
	Long:  `List all runs`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runs := functions.GetRuns()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Scenario", "Players", "Status", "Started At"})
		for _, r := range *runs {
			table.Append([]string{
				r.ID,
				r.Scenario,
				strings.Join(r.Players, ", "),
				r.Status,
				r.StartedAt.Format(time.RFC3339),
			})
		}
		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(runListCmd)
}
