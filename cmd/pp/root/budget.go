package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newBudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the daily playtime budget",
	}

	cmd.AddCommand(
		newBudgetShowCmd(),
		newBudgetSetCmd(),
		newBudgetExtraCmd(),
		newBudgetResetTodayCmd(),
	)

	return cmd
}

func newBudgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's budget snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			settings := svc.LoadTimeSettings()
			ts := svc.TimeSnapshot()

			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Time budget"))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Enabled", ui.OnOff(ts.Enabled)))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Base limit", fmt.Sprintf("%d min", settings.LimitMinutes)))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Used today", ui.Clock(ts.UsedSeconds)))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Remaining", ui.Clock(ts.RemainingSeconds)))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Limit (with bonus)", ui.Clock(ts.LimitSeconds)))
			return nil
		},
	}
}

func newBudgetSetCmd() *cobra.Command {
	var enabled bool
	var minutes int
	var pin string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save budget settings (parent action)",
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

			svc.SaveTimeSettings(enabled, minutes)
			saved := svc.LoadTimeSettings()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, %s\n",
				ui.Good.Render(ui.IconDone+" Saved:"),
				ui.LabelValue("enabled", ui.OnOff(saved.Enabled)),
				ui.LabelValue("limit", fmt.Sprintf("%d min", saved.LimitMinutes)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&enabled, "enabled", true, "Whether the daily limit is enforced")
	cmd.Flags().IntVar(&minutes, "minutes", 30, "Base daily limit in minutes (1-600)")
	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}

func newBudgetExtraCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "extra <minutes>",
		Short: "Grant bonus minutes for today (parent action)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("minutes is required")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return errors.New("minutes must be a positive integer")
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

			minutes, _ := strconv.Atoi(args[0])
			svc.AddExtraMinutes(minutes)
			ts := svc.TimeSnapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(fmt.Sprintf(ui.IconGift+" +%d min today.", minutes)),
				ui.Muted.Render(fmt.Sprintf("(remaining %s)", ui.Clock(ts.RemainingSeconds))))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}

func newBudgetResetTodayCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "reset-today",
		Short: "Zero today's usage and bonus minutes (parent action)",
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

			svc.ResetTodayUsage()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Today's usage reset."))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}
