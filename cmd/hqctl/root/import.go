package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the canonical record with a validated JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			svc, _, err := openService(opts)
			if err != nil {
				return err
			}
			state, err := svc.Import(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (level %d, %d XP)\n", args[0], state.Avatar.Level, state.Avatar.XP)
			return nil
		},
	}
}
