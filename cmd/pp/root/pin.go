package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsyncsolutions/pixelpress/internal/engine"
	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

// requirePIN gates parent actions once a PIN exists. With no PIN set,
// actions pass through: the PIN is a soft deterrent the parent opts
// into, not a security boundary.
func requirePIN(svc *engine.Service, pin string) error {
	if !svc.HasPIN() {
		return nil
	}
	if pin == "" {
		return errors.New("a parent PIN is set; pass --pin")
	}
	return svc.VerifyPIN(pin)
}

func newPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the parent PIN and exit gate",
	}

	cmd.AddCommand(
		newPinSetCmd(),
		newPinCheckCmd(),
		newPinClearCmd(),
		newPinExitGateCmd(),
	)

	return cmd
}

func newPinSetCmd() *cobra.Command {
	var current string

	cmd := &cobra.Command{
		Use:   "set <4-digit-pin>",
		Short: "Set or replace the parent PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requirePIN(svc, current); err != nil {
				return err
			}
			if err := svc.SetPIN(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconKey+" PIN saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "pin", "", "Current PIN (required when replacing)")
	return cmd
}

func newPinCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <pin>",
		Short: "Verify a PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.VerifyPIN(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" PIN OK."))
			return nil
		},
	}
}

func newPinClearCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the parent PIN",
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
			svc.ClearPIN()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("PIN removed."))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Current PIN")
	return cmd
}

func newPinExitGateCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "exit-gate <on|off>",
		Short: "Require the PIN to leave the game shelf",
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
			svc.SetExitRequiresPIN(args[0] == "on")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render("Exit gate:"), ui.OnOff(svc.ExitRequiresPIN()))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "Parent PIN")
	return cmd
}
