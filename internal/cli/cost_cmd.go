package cli

import (
	"sort"
	"strings"

	"github.com/alexanderramin/rostercost/internal/cli/formatter"
	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/spf13/cobra"
)

func newCostCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Compute labor cost after cost sharing",
	}

	cmd.AddCommand(
		newCostShowCmd(app),
		newCostReportCmd(app),
		newCostStaffCmd(app),
	)

	return cmd
}

func newCostShowCmd(app *App) *cobra.Command {
	var projectRef string
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one project's cost breakdown for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			year, month, err := period.resolve(app)
			if err != nil {
				return err
			}
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}

			calc, err := app.Cost.GetProjectCostBreakdown(ctx, p.ID, year, month)
			if err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewProjectCostView(calc, year, month), func() string {
				return formatter.FormatProjectCost(calc, year, month)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	period.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newCostReportCmd(app *App) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show every active project's cost for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := period.resolve(app)
			if err != nil {
				return err
			}

			calcs, err := app.Cost.GetAllProjectsCostBreakdown(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			sort.SliceStable(calcs, func(i, j int) bool {
				return strings.ToLower(calcs[i].ProjectName) < strings.ToLower(calcs[j].ProjectName)
			})

			return printOut(cmd, app, contract.NewCostReport(calcs, year, month), func() string {
				return formatter.FormatCostReport(calcs, year, month)
			})
		},
	}

	period.register(cmd.Flags())

	return cmd
}

func newCostStaffCmd(app *App) *cobra.Command {
	var projectRef string
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Show per-staff worked days and wages for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			year, month, err := period.resolve(app)
			if err != nil {
				return err
			}
			p, err := resolveProject(ctx, app, projectRef)
			if err != nil {
				return err
			}

			costs, err := app.Cost.GetStaffCosts(ctx, p.ID, year, month)
			if err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewStaffCostViews(costs), func() string {
				return formatter.FormatStaffCosts(p, costs, year, month)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	period.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
