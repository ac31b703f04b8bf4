package root

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newMetricsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show or reset the usage metrics",
	}

	cmd.AddCommand(
		newMetricsShowCmd(),
		newMetricsResetCmd(),
	)

	return cmd
}

func newMetricsShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show session, per-game, and per-day counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			snap := svc.MetricsAll()

			if asJSON {
				b, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return fmt.Errorf("encode metrics: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Metrics"))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Sessions", snap.Global.Sessions))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Launches", snap.Global.TotalLaunches))
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Play time", ui.Clock(int(snap.Global.TotalPlaySeconds))))
			if snap.Global.FirstSeenAt > 0 {
				fmt.Fprintf(out, "%s\n", ui.LabelValue("First seen", time.UnixMilli(snap.Global.FirstSeenAt).Format("2006-01-02")))
			}
			fmt.Fprintln(out, "")

			if len(snap.Games) > 0 {
				fmt.Fprintln(out, ui.H2.Render("🎮 Per game"))
				slugs := make([]string, 0, len(snap.Games))
				for slug := range snap.Games {
					slugs = append(slugs, slug)
				}
				sort.Strings(slugs)
				for _, slug := range slugs {
					e := snap.Games[slug]
					line := fmt.Sprintf("- %s launches %d, completes %d, %s", ui.Key.Render(slug), e.Launches, e.Completes, ui.Clock(int(e.PlaySeconds)))
					if e.Best != nil {
						line += ui.Muted.Render(fmt.Sprintf(", best %d", *e.Best))
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, "")
			}

			if len(snap.Day) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconCalendar+" Per day"))
				days := make([]string, 0, len(snap.Day))
				for day := range snap.Day {
					days = append(days, day)
				}
				sort.Strings(days)
				for _, day := range days {
					e := snap.Day[day]
					fmt.Fprintf(out, "- %s sessions %d, launches %d, %s\n", ui.Key.Render(day), e.Sessions, e.Launches, ui.Clock(int(e.PlaySeconds)))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw snapshot as JSON")
	return cmd
}

func newMetricsResetCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero all metrics (parent action)",
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
			svc.MetricsReset()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Metrics zeroed."))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}
