package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/engine"
	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show trial, playtime budget, stars, and unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconShelf, "PixelPress Status"))
			fmt.Fprintln(out, "")

			trial := svc.TrialStatus()
			fmt.Fprintln(out, ui.H2.Render(ui.IconCalendar+" Trial"))
			switch {
			case !trial.HasStarted:
				fmt.Fprintln(out, "- "+ui.Muted.Render(fmt.Sprintf("not started (%d days once it does)", trial.DaysRemaining)))
			case trial.IsExpired:
				fmt.Fprintln(out, "- "+ui.Bad.Render(ui.IconLock+" expired"))
			default:
				fmt.Fprintf(out, "- %s\n", ui.LabelValue("Days remaining", ui.Good.Render(fmt.Sprintf("%d", trial.DaysRemaining))))
			}
			if svc.TrialOverrideUnlocked() {
				fmt.Fprintln(out, "- "+ui.Good.Render("parent override active"))
			}
			fmt.Fprintln(out, "")

			ts := svc.TimeSnapshot()
			fmt.Fprintln(out, ui.H2.Render(ui.IconClock+" Time budget"))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Enabled", ui.OnOff(ts.Enabled)))
			if ts.Enabled {
				fmt.Fprintf(out, "- %s\n", ui.LabelValue("Used", ui.Clock(ts.UsedSeconds)))
				fmt.Fprintf(out, "- %s\n", ui.LabelValue("Remaining", ui.Clock(ts.RemainingSeconds)))
				fmt.Fprintf(out, "- %s\n", ui.LabelValue("Limit", ui.Clock(ts.LimitSeconds)))
			}
			fmt.Fprintln(out, "")

			stars := svc.StarsTotal()
			unlocks := svc.UnlockSnapshot()
			fmt.Fprintln(out, ui.H2.Render(ui.IconStar+" Progress"))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Stars", stars))
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Streak", fmt.Sprintf("%d days", svc.Streak())))
			if last := svc.LastPlayedDate(); last != "" {
				fmt.Fprintf(out, "- %s\n", ui.LabelValue("Last played", last))
			}
			fmt.Fprintf(out, "- %s\n", ui.LabelValue("Skin level", unlocks.SkinLevel))
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Hard mode:"), unlockedStr(unlocks.HardModeUnlocked))
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Challenger badge:"), unlockedStr(unlocks.ChallengeBadgeUnlocked))
			if nm := nextMilestone(stars); nm != nil {
				fmt.Fprintf(out, "- %s\n", ui.LabelValue("Next unlock", ui.Muted.Render(fmt.Sprintf("%s at %d stars", nm.Description, nm.Threshold))))
			}
			if notice := svc.PendingUnlockNotice(); notice != nil {
				fmt.Fprintf(out, "- %s\n", ui.BannerUnlock.Render(fmt.Sprintf("%s %s — %s", ui.IconGift, notice.Title, notice.Description)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🎯 Today's picks"))
			for _, g := range svc.FeaturedToday(4) {
				fmt.Fprintf(out, "- %s %s\n", g.Title, ui.Muted.Render("("+g.Slug+")"))
			}

			return nil
		},
	}

	return cmd
}

func unlockedStr(ok bool) string {
	if ok {
		return ui.Good.Render("unlocked")
	}
	return ui.Muted.Render("locked")
}

func nextMilestone(stars int) *engine.UnlockNotice {
	for _, m := range engine.Milestones() {
		if stars < m.Threshold {
			n := m
			return &n
		}
	}
	return nil
}
