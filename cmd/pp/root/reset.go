package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newResetCmd() *cobra.Command {
	var pin string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every pp_* key (factory reset, parent action)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this wipes all trial, budget, progress, and metrics state; re-run with --yes")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requirePIN(svc, pin); err != nil {
				return err
			}

			n := svc.ClearAll()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d keys removed.\n", ui.Warn.Render(ui.IconWarn+" Reset:"), n)
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")
	return cmd
}
