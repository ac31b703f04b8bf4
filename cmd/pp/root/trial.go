package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newTrialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Manage the free-trial window",
	}

	cmd.AddCommand(
		newTrialStartCmd(),
		newTrialResetCmd(),
		newTrialOverrideCmd(),
	)

	return cmd
}

func newTrialStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trial (no-op if already started)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.StartTrial()
			st := svc.TrialStatus()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Trial running"), ui.Muted.Render(fmt.Sprintf("(%d days remaining)", st.DaysRemaining)))
			return nil
		},
	}
}

func newTrialResetCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the trial so the next start begins fresh (parent action)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requirePIN(svc, pin); err != nil {
				return err
			}

			svc.ResetTrial()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Trial cleared."))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}

func newTrialOverrideCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "override <on|off>",
		Short: "Toggle the parent bypass of trial expiry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return errors.New("expected on or off")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requirePIN(svc, pin); err != nil {
				return err
			}

			on := args[0] == "on"
			svc.SetTrialOverride(on)
			if on {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconKey+" Override enabled — expiry no longer blocks play."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Override disabled."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}
