package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/engine"
	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Browse the shelf and record play sessions",
	}

	cmd.AddCommand(
		newGamesListCmd(),
		newGamesFeaturedCmd(),
		newGamesPlayCmd(),
	)

	return cmd
}

func newGamesListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the game catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			list := engine.AllGames()
			if category != "" {
				list = engine.GamesByCategory(engine.GameCategory(category))
				if len(list) == 0 {
					return fmt.Errorf("unknown category: %s", category)
				}
			}

			fmt.Fprintln(out, ui.Heading(ui.IconShelf, "Game shelf"))
			for _, g := range list {
				status := ui.Good.Render("live")
				if g.Status == engine.GameComingSoon {
					status = ui.Muted.Render("coming soon")
				}
				fmt.Fprintf(out, "- %s %s %s — %s\n", ui.Key.Render(g.Title), ui.Muted.Render("("+g.Slug+")"), status, ui.Muted.Render(g.Description))
			}

			counts := engine.CategoryCounts()
			fmt.Fprintf(out, "\n%s", ui.Muted.Render(fmt.Sprintf("%d games", counts["all"])))
			for _, c := range engine.Categories() {
				fmt.Fprintf(out, "%s", ui.Muted.Render(fmt.Sprintf(" · %s %d", c, counts[string(c)])))
			}
			fmt.Fprintln(out, "")
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (kids|classics|educational|puzzles)")
	return cmd
}

func newGamesFeaturedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show today's featured picks (same on every device process)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading("🎯", "Today's picks"))
			for _, g := range svc.FeaturedToday(count) {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", g.Title, ui.Muted.Render("("+g.Slug+")"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 4, "Number of picks")
	return cmd
}

func newGamesPlayCmd() *cobra.Command {
	var seconds int
	var score int

	cmd := &cobra.Command{
		Use:   "play <slug>",
		Short: "Record a finished play session for a game",
		Long: `Record the side effects a mini-game performs against the engine:
launch and completion metrics, the daily streak mark, one star, play
seconds, and the best score (compared by the caller, since "better"
is game-specific).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("slug is required")
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

			out := cmd.OutOrStdout()
			game := engine.GameBySlug(args[0])
			if game == nil {
				return fmt.Errorf("unknown game: %s", args[0])
			}
			if game.Status != engine.GameLive {
				return fmt.Errorf("%s is not playable yet", game.Title)
			}

			if !svc.TrialAllowed() {
				return errors.New("trial expired; a parent can run `pp trial override on`")
			}
			if gate := svc.RecordPlayVisit(); gate.Blocked {
				return fmt.Errorf("free plays used up (%d/%d); unlock the shelf to keep playing", gate.PlaysUsed, gate.Limit)
			}
			if ts := svc.TimeSnapshot(); ts.Enabled && ts.RemainingSeconds == 0 {
				return errors.New("no playtime left today; a parent can run `pp budget extra`")
			}

			svc.GameLaunch(game.Slug)
			svc.MarkPlayedToday()
			if seconds > 0 {
				svc.AddPlaySeconds(game.Slug, seconds)
			}
			svc.GameComplete(game.Slug)
			svc.AddStars(1)

			if score > 0 {
				prev := svc.MetricsAll().Games[game.Slug].Best
				if isNewBest(prev, score, game.LowerBestIsBetter) {
					svc.SetBest(game.Slug, score)
					fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" New best!"))
				}
			}

			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Played"), game.Title, ui.Muted.Render(fmt.Sprintf("(+1 %s, streak %d)", ui.IconStar, svc.Streak())))
			if notice := svc.PendingUnlockNotice(); notice != nil {
				fmt.Fprintln(out, ui.BannerUnlock.Render(fmt.Sprintf("%s %s — %s", ui.IconGift, notice.Title, notice.Description)))
				svc.MarkUnlockNoticeSeen(notice.Threshold)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 0, "Play seconds to record")
	cmd.Flags().IntVar(&score, "score", 0, "Final score to compare against the stored best")
	return cmd
}

func isNewBest(prev *int64, score int, lowerIsBetter bool) bool {
	if prev == nil {
		return true
	}
	if lowerIsBetter {
		return int64(score) < *prev
	}
	return int64(score) > *prev
}
