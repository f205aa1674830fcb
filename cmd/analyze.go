package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showdown-teambuilder/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <build|share-code|team-id>",
	Short: "Print the defensive and offensive matrices of a team",
	Long: `Resolves the team, then prints one row per type of the generation: how many
members are weak or resistant to it, and how hard the team can hit it back.
Threats, coverage gaps and a suggested swap follow the matrices.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		ref, err := teamRef(args[0])
		if err != nil {
			return err
		}
		rep, err := svc.Analyze(ref, explicitGen(cmd))
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), rep)
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Text(rep))
		return nil
	},
}

var adviseCmd = &cobra.Command{
	Use:   "advise <build|share-code|team-id>",
	Short: "Suggest counters, coverage and a swap for a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		ref, err := teamRef(args[0])
		if err != nil {
			return err
		}
		adv, err := svc.Advise(ref, explicitGen(cmd))
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), adv)
		}
		fmt.Fprint(cmd.OutOrStdout(), report.AdviceText(adv))
		return nil
	},
}

var matchupCmd = &cobra.Command{
	Use:   "matchup <mine> <rival>",
	Short: "Show how each of your members fares against each rival member",
	Long: `Every cell is the best multiplier your member can land on the rival member
with its damaging moves. Both teams are read under the same generation.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		mine, err := teamRef(args[0])
		if err != nil {
			return err
		}
		rival, err := teamRef(args[1])
		if err != nil {
			return err
		}
		m, gen, err := svc.Matchup(mine, rival, explicitGen(cmd))
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd.OutOrStdout(), map[string]any{"generation": gen, "matchup": m})
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.MatchupTable(m))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, adviseCmd, matchupCmd} {
		c.Flags().Bool("json", false, "print JSON instead of tables")
		rootCmd.AddCommand(c)
	}
}
