package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/cli/formatter"
	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newStaffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage a project's staff and daily wages",
	}

	cmd.AddCommand(
		newStaffAddCmd(app),
		newStaffListCmd(app),
		newStaffUpdateCmd(app),
		newStaffDeactivateCmd(app),
	)

	return cmd
}

func parseWage(s string) (decimal.Decimal, error) {
	wage, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid wage %q: %w", s, domain.ErrInvalidInput)
	}
	return wage, nil
}

func newStaffAddCmd(app *App) *cobra.Command {
	var projectRef, code, name, wage string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a staff member to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			w, err := parseWage(wage)
			if err != nil {
				return err
			}

			s := &domain.Staff{
				ProjectID:  p.ID,
				Code:       code,
				Name:       strings.TrimSpace(name),
				WagePerDay: w,
			}
			if err := app.Staff.Create(ctx, s); err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewStaffView(s), func() string {
				return fmt.Sprintf("Added %s (%s) to %s at %s/day", s.Name, s.Code, p.DisplayID(), formatter.FormatMoney(s.WagePerDay))
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&code, "code", "", "Staff code, unique within the project")
	cmd.Flags().StringVar(&name, "name", "", "Staff name")
	cmd.Flags().StringVar(&wage, "wage", "", "Wage per worked day")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("wage")

	return cmd
}

func newStaffListCmd(app *App) *cobra.Command {
	var projectRef string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's staff",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			staff, err := app.Staff.ListByProject(ctx, p.ID, all)
			if err != nil {
				return err
			}

			views := make([]contract.StaffView, 0, len(staff))
			for _, s := range staff {
				views = append(views, contract.NewStaffView(s))
			}
			return printOut(cmd, app, views, func() string {
				return formatter.FormatStaffList(p, staff)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive staff")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStaffUpdateCmd(app *App) *cobra.Command {
	var projectRef, name, wage string

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Update a staff member's name or wage",
		Long: "Update a staff member. Costs are always computed with the current wage,\n" +
			"so a wage change also applies to earlier periods.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			s, err := resolveStaff(ctx, app, p.ID, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("wage") {
				return fmt.Errorf("nothing to update (use --name or --wage): %w", domain.ErrInvalidInput)
			}
			if cmd.Flags().Changed("name") {
				s.Name = strings.TrimSpace(name)
			}
			if cmd.Flags().Changed("wage") {
				if s.WagePerDay, err = parseWage(wage); err != nil {
					return err
				}
			}

			if err := app.Staff.Update(ctx, s); err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewStaffView(s), func() string {
				return fmt.Sprintf("Updated %s (%s): %s/day", s.Name, s.Code, formatter.FormatMoney(s.WagePerDay))
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&wage, "wage", "", "New wage per worked day")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newStaffDeactivateCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "deactivate <code>",
		Short: "Deactivate a staff member",
		Long: "Deactivate a staff member. Roster entries already recorded for them\n" +
			"still count toward cost.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}
			s, err := resolveStaff(ctx, app, p.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Staff.Deactivate(ctx, s.ID); err != nil {
				return err
			}
			s.Active = false

			return printOut(cmd, app, contract.NewStaffView(s), func() string {
				return fmt.Sprintf("Deactivated %s (%s)", s.Name, s.Code)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
