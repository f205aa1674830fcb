package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showdown-teambuilder/build"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Turn builds into share codes and back",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode <build-file>",
	Short: "Print the share code of a build file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := build.Load(args[0])
		if err != nil {
			return err
		}
		code, err := build.EncodeShare(b)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Print the YAML build behind a share code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := build.DecodeShare(args[0])
		if err != nil {
			return err
		}
		out, err := b.YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.AddCommand(shareEncodeCmd, shareDecodeCmd)
}
