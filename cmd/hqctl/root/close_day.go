package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCloseDayCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "close-day",
		Short: "Close the open day now instead of waiting for the scheduled close",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := openService(opts)
			if err != nil {
				return err
			}
			res, err := svc.CloseDay(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Closed %s: %d kcal, badge %s, XP %+d\n",
				res.Log.Date, res.Evaluation.TotalKcal, res.Evaluation.BadgeDaily,
				res.Evaluation.QualityXPDelta+res.Deltas.XPDelta)
			if res.LevelUp {
				fmt.Fprintf(out, "Level up! Now level %d\n", res.State.Avatar.Level)
			}
			if res.BossVictory {
				fmt.Fprintln(out, "Boss defeated")
			}
			if res.ReportPath != "" {
				fmt.Fprintf(out, "Report %s\n", res.ReportPath)
			}
			return nil
		},
	}
}
