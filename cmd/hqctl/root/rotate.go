package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRotateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Run one rotation pass with the persisted retention settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := openService(opts)
			if err != nil {
				return err
			}
			if _, err := svc.Load(cmd.Context()); err != nil {
				return err
			}
			res, err := svc.Rotate(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(res.Removed) == 0 {
				fmt.Fprintln(out, "Nothing to rotate")
				return nil
			}
			for _, rel := range res.Removed {
				fmt.Fprintf(out, "removed %s\n", rel)
			}
			fmt.Fprintf(out, "Freed %d bytes\n", res.BytesFreed)
			return nil
		},
	}
}
