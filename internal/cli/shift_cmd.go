package cli

import (
	"fmt"

	"github.com/alexanderramin/rostercost/internal/cli/formatter"
	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/spf13/cobra"
)

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage shift codes and which of them count as worked",
	}

	cmd.AddCommand(
		newShiftSetCmd(app),
		newShiftListCmd(app),
		newShiftRemoveCmd(app),
		newShiftSeedCmd(app),
	)

	return cmd
}

func newShiftSetCmd(app *App) *cobra.Command {
	var name, color string
	var work bool

	cmd := &cobra.Command{
		Use:   "set <code>",
		Short: "Create or update a shift code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := &domain.ShiftType{
				Code:        args[0],
				Name:        name,
				Color:       color,
				IsWorkShift: work,
			}
			if err := app.ShiftTypes.Upsert(cmd.Context(), st); err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewShiftTypeView(st), func() string {
				counts := "does not count"
				if st.IsWorkShift {
					counts = "counts"
				}
				return fmt.Sprintf("Saved shift %s (%s), %s toward cost", st.Code, st.Name, counts)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex, e.g. #8ec07c)")
	cmd.Flags().BoolVar(&work, "work", false, "Days with this code count toward labor cost")

	return cmd
}

func newShiftListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shift codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := app.ShiftTypes.List(cmd.Context())
			if err != nil {
				return err
			}

			views := make([]contract.ShiftTypeView, 0, len(types))
			for _, st := range types {
				views = append(views, contract.NewShiftTypeView(st))
			}
			return printOut(cmd, app, views, func() string {
				return formatter.FormatShiftTypes(types)
			})
		},
	}
}

func newShiftRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <code>",
		Short: "Delete a shift code",
		Long: "Delete a shift code. Roster entries using it stay in place and no\n" +
			"longer count toward cost.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ShiftTypes.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printOut(cmd, app, map[string]string{"removed": args[0]}, func() string {
				return fmt.Sprintf("Removed shift %s", args[0])
			})
		},
	}
}

func newShiftSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the reference shift codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.ShiftTypes.Seed(cmd.Context())
			if err != nil {
				return err
			}
			return printOut(cmd, app, map[string]int{"seeded": n}, func() string {
				return fmt.Sprintf("Seeded %d shift codes", n)
			})
		},
	}
}
