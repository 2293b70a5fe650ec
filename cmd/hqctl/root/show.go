package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted avatar, boss and journey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			state, err := store.LoadState(cmd.Context())
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func printState(out io.Writer, s domain.AppState) {
	a := s.Avatar
	fmt.Fprintf(out, "Avatar   level %d, %d XP, %d/%d HP, streak %d\n", a.Level, a.XP, a.HPCurrent, a.HPMax, a.Streak)
	inv := a.Inventory
	fmt.Fprintf(out, "Loot     %d items (%d weapons, %d shields, %d capes, %d artifacts)\n",
		inv.Count(), len(inv.Weapons), len(inv.Shields), len(inv.Capes), len(inv.Artifacts))
	fmt.Fprintf(out, "Boss     %s at %.0f%% (%s)\n", s.Boss.Name, s.Boss.HPPercent*100, s.Boss.DailyObjective)

	j := s.Journey
	fmt.Fprintf(out, "Journey  %s, %d/%d steps to %s\n", j.Environment, j.AccumulatedSteps, j.DistanceToNext, j.CurrentDestination)
	if len(j.Unlocked) > 0 {
		fmt.Fprintf(out, "Unlocked %d destinations, latest %s\n", len(j.Unlocked), j.Unlocked[len(j.Unlocked)-1])
	}
	if s.Today != nil {
		fmt.Fprintf(out, "Today    %s, %d meals logged\n", s.Today.Date, len(s.Today.Meals))
	}
}
