package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/HealthQuest_Go/internal/storage"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		format string
		folder bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the canonical record to stdout or the export folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := storage.ParseExportFormat(format)
			if err != nil {
				return err
			}
			svc, _, err := openService(opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if folder {
				path, err := svc.ExportToFolder(ctx, f)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			if f == storage.FormatYAML {
				doc, err := svc.ExportYAML(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			data, err := svc.ExportJSON(ctx)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(storage.FormatJSON), "json or yaml")
	cmd.Flags().BoolVar(&folder, "folder", false, "write into <dir>/export instead of stdout")
	return cmd
}
