package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/HealthQuest_Go/internal/domain"
)

func newUsageCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Report bytes used against the storage quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := openService(opts)
			if err != nil {
				return err
			}
			if _, err := svc.Load(cmd.Context()); err != nil {
				return err
			}
			usage, err := svc.Usage(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f MB of %d MB (%.1f%%)\n",
				float64(usage.UsedBytes)/domain.BytesPerMB,
				usage.QuotaBytes/domain.BytesPerMB,
				percentOf(usage.UsedBytes, usage.QuotaBytes))
			return nil
		},
	}
}

func percentOf(used, quota int64) float64 {
	if quota <= 0 {
		return 0
	}
	return float64(used) / float64(quota) * 100
}
