package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "pp",
	Short:         "PixelPress — local parental time & reward engine",
	Long:          "PixelPress keeps a game shelf's trial window, daily playtime budget, star rewards, and usage metrics in one on-device store shared by every process.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newTrialCmd(),
		newBudgetCmd(),
		newProgressCmd(),
		newGamesCmd(),
		newMetricsCmd(),
		newPinCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
