package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"showdown-teambuilder/build"
	"showdown-teambuilder/client"
	"showdown-teambuilder/game"
	"showdown-teambuilder/logger"
	"showdown-teambuilder/parser"
	"showdown-teambuilder/report"
	"showdown-teambuilder/service"
	"showdown-teambuilder/store"
)

var scoutCmd = &cobra.Command{
	Use:   "scout [roomid]",
	Short: "Follow a Showdown battle and scout the rival team",
	Long: `Joins a live battle room and prints each tracked protocol line, redrawing the
scouting summary (revealed teams, best move, suggested switch, matchup grid)
until the battle ends or you interrupt it.

With --log the battle is replayed from a saved protocol log instead.`,
	Example: `  teambuilder scout gen9ou-2212345678
  teambuilder scout --log replay.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		if logFile, _ := cmd.Flags().GetString("log"); logFile != "" {
			raw, err := os.ReadFile(logFile)
			if err != nil {
				return fmt.Errorf("reading battle log: %w", err)
			}
			state, err := parser.ParseLog(string(raw), svc.Dex)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Scouting(state, svc.Calc))
			return saveRival(cmd, svc, state)
		}

		if len(args) == 0 {
			return fmt.Errorf("a room id or --log is required")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		state, err := scoutRoom(ctx, cmd, svc, args[0])
		if state == nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Scouting(state, svc.Calc))
		if err != nil {
			return err
		}
		return saveRival(cmd, svc, state)
	},
}

// scoutRoom streams a room until the battle ends or ctx is cancelled and returns what was
// scouted so far.
func scoutRoom(ctx context.Context, cmd *cobra.Command, svc *service.Service, room string) (*game.BattleState, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	roomID := client.RoomID(room)
	sc, err := client.NewShowdownClient(ctx, settings.ShowdownURL)
	if err != nil {
		return nil, err
	}
	defer sc.Close()
	if err := sc.JoinRoom(roomID); err != nil {
		return nil, err
	}
	logger.Info("scouting", "room", roomID)

	out := cmd.OutOrStdout()
	state := game.NewBattleState()
	msgs, errc := sc.Messages(ctx)
	for msg := range msgs {
		for _, line := range strings.Split(msg, "\n") {
			if parser.ProcessLine(state, svc.Dex, line) {
				fmt.Fprintln(out, line)
			}
		}
		if state.Ended {
			return state, nil
		}
	}
	if err := <-errc; err != nil {
		return state, err
	}
	return state, nil
}

// saveRival stores p2's revealed team as a rival build when --save-rival is set.
func saveRival(cmd *cobra.Command, svc *service.Service, state *game.BattleState) error {
	if save, _ := cmd.Flags().GetBool("save-rival"); !save {
		return nil
	}
	rival := state.Players["p2"]
	if rival == nil || len(rival.Order) == 0 {
		return fmt.Errorf("no rival team revealed")
	}
	b := build.FromRoster(rival.Name, state.Gen, rival.Roster())
	saved, err := svc.SaveTeam("", store.KindRival, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s as %s\n", saved.Name, saved.ID)
	return nil
}

func init() {
	scoutCmd.Flags().String("log", "", "replay a saved battle log instead of joining a room")
	scoutCmd.Flags().Bool("save-rival", false, "store the rival's revealed team in the vault")
	rootCmd.AddCommand(scoutCmd)
}
