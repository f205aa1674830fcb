package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"showdown-teambuilder/build"
	"showdown-teambuilder/store"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Save, list and recall teams and rival teams",
	Long: `The vault keeps builds under a generated id. Use --db-driver sqlite to keep them
between runs; the default memory vault only lives as long as the process.`,
}

var vaultSaveCmd = &cobra.Command{
	Use:   "save <build-file>",
	Short: "Store a build file in the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		b, err := build.Load(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		rawKind, _ := cmd.Flags().GetString("kind")
		kind, err := store.ParseKind(rawKind)
		if err != nil {
			return err
		}
		saved, err := svc.SaveTeam(name, kind, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s as %s\n", saved.Name, saved.ID)
		return nil
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved teams, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		rawKind, _ := cmd.Flags().GetString("kind")
		var kind store.Kind
		if rawKind != "" {
			if kind, err = store.ParseKind(rawKind); err != nil {
				return err
			}
		}
		teams, err := svc.Store.List(kind)
		if err != nil {
			return err
		}
		if len(teams) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The vault is empty.")
			return nil
		}
		t := table.New().Headers("ID", "Name", "Kind", "Gen", "Members", "Saved")
		for _, st := range teams {
			gen := "-"
			if st.Build.Generation != 0 {
				gen = fmt.Sprint(st.Build.Generation)
			}
			t.Row(st.ID, st.Name, string(st.Kind), gen, fmt.Sprint(len(st.Build.Team)),
				time.UnixMilli(st.Timestamp).Format(time.DateTime))
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var vaultShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved team as a YAML build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		st, err := svc.Store.Get(args[0])
		if err != nil {
			return err
		}
		out, err := st.Build.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a saved team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := svc.Store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
	vaultCmd.AddCommand(vaultSaveCmd, vaultListCmd, vaultShowCmd, vaultDeleteCmd)

	vaultSaveCmd.Flags().String("name", "", "name to save under (defaults to the build's name)")
	vaultSaveCmd.Flags().String("kind", "team", "team or rival")
	vaultListCmd.Flags().String("kind", "", "only list teams of this kind")
}
