package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show or reset stars and streak",
	}

	cmd.AddCommand(
		newProgressShowCmd(),
		newProgressResetCmd(),
	)

	return cmd
}

func newProgressShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stars, streak, and free-play gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			svc.EnsureProgressDefaults()

			fmt.Fprintln(out, ui.Heading(ui.IconStar, "Progress"))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Stars", svc.StarsTotal()))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Streak", fmt.Sprintf("%d days", svc.Streak())))
			if last := svc.LastPlayedDate(); last != "" {
				fmt.Fprintf(out, "%s\n", ui.LabelValue("Last played", last))
			} else {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Last played:"), ui.Muted.Render("never"))
			}

			gate := svc.PlayGate()
			if gate.Blocked {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Free plays:"), ui.Bad.Render(fmt.Sprintf("%d/%d used — shelf locked", gate.PlaysUsed, gate.Limit)))
			} else if !svc.ShelfUnlocked() {
				fmt.Fprintf(out, "%s %d/%d used\n", ui.Key.Render("Free plays:"), gate.PlaysUsed, gate.Limit)
			}
			return nil
		},
	}
}

func newProgressResetCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero stars, streak, and plays (parent action)",
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

			svc.ResetProgress()
			svc.ResetUnlockNotices()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Progress reset."))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}
