package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showdown-teambuilder/report"
)

var chartCmd = &cobra.Command{
	Use:   "chart [attack-type [defending-type [defending-type]]]",
	Short: "Print the type chart, or one attack against a typing",
	Long: `Without arguments prints the generation's whole matrix, attackers down the
side. With an attack type and one or two defending types prints that single
multiplier, taking --ability and --item of the defender into account.`,
	Example: `  teambuilder chart --gen 1
  teambuilder chart ground electric water --ability levitate`,
	Args: cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			chart, err := svc.Chart(explicitGen(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, chart.Generation)
			fmt.Fprintln(out, report.ChartTable(chart.Generation.ID))
			return nil
		}
		if len(args) == 1 {
			return fmt.Errorf("%s needs at least one defending type", args[0])
		}
		ability, _ := cmd.Flags().GetString("ability")
		item, _ := cmd.Flags().GetString("item")
		e, err := svc.Effectiveness(args[0], args[1:], ability, item, explicitGen(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, report.Efficacy(e.Attack, e.Defending, e.Multiplier))
		return nil
	},
}

func init() {
	chartCmd.Flags().String("ability", "", "defender's ability, e.g. levitate")
	chartCmd.Flags().String("item", "", "defender's held item")
	rootCmd.AddCommand(chartCmd)
}
