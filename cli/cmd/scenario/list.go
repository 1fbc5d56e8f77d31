package scenario

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/appspec/harness/cli/functions"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scenarios",
	Long:  `List all scenarios`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scenarios := functions.GetScenarios()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Network", "Slots", "Bridges", "State Dump"})
		for _, s := range *scenarios {
			slots := make([]string, 0, len(s.Instances))
			for slot := range s.Instances {
				slots = append(slots, slot)
			}
			sort.Strings(slots)
			table.Append([]string{
				s.Name,
				string(s.Network.Type),
				strings.Join(slots, ", "),
				strconv.Itoa(len(s.Bridges)),
				strconv.FormatBool(s.Logger.StateDump),
			})
		}
		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(scenarioListCmd)
}
