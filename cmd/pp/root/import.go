package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

func newImportCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a pp_* JSON export (parent action)",
		Long: `Import a previously exported JSON object. String values are written
as-is, objects as JSON, and null removes a key. Keys outside the pp_
namespace are ignored.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
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

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}

			n, err := svc.ImportState(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d keys.\n", ui.Good.Render(ui.IconDone+" Imported"), n)
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN (required once a PIN is set)")
	return cmd
}
