package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/cli/formatter"
	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Record and inspect monthly rosters",
	}

	cmd.AddCommand(
		newRosterSetCmd(app),
		newRosterClearCmd(app),
		newRosterShowCmd(app),
		newRosterImportCmd(app),
	)

	return cmd
}

// entryView is the JSON shape printed after a single cell changes.
type entryView struct {
	ProjectID string `json:"project_id"`
	Period    string `json:"period"`
	StaffCode string `json:"staff_code"`
	Day       int    `json:"day"`
	ShiftCode string `json:"shift_code,omitempty"`
}

func newRosterSetCmd(app *App) *cobra.Command {
	var projectRef, staffCode, shift string
	var day int
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set one staff member's shift for a day",
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
			s, err := resolveStaff(ctx, app, p.ID, staffCode)
			if err != nil {
				return err
			}

			if err := app.Rosters.SetEntry(ctx, p.ID, year, month, s.ID, day, shift); err != nil {
				return err
			}

			view := entryView{ProjectID: p.ID, Period: contract.Period(year, month), StaffCode: s.Code, Day: day, ShiftCode: shift}
			return printOut(cmd, app, view, func() string {
				return fmt.Sprintf("%s %s day %d: %s", p.DisplayID(), s.Code, day, shift)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&staffCode, "staff", "", "Staff code")
	cmd.Flags().IntVar(&day, "day", 0, "Day of month")
	cmd.Flags().StringVar(&shift, "shift", "", "Shift code (e.g. 1, 2, 3, ดึก, OFF)")
	period.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("staff")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("shift")

	return cmd
}

func newRosterClearCmd(app *App) *cobra.Command {
	var projectRef, staffCode string
	var day int
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove one staff member's shift for a day",
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
			s, err := resolveStaff(ctx, app, p.ID, staffCode)
			if err != nil {
				return err
			}

			if err := app.Rosters.ClearEntry(ctx, p.ID, year, month, s.ID, day); err != nil {
				return err
			}

			view := entryView{ProjectID: p.ID, Period: contract.Period(year, month), StaffCode: s.Code, Day: day}
			return printOut(cmd, app, view, func() string {
				return fmt.Sprintf("Cleared %s %s day %d", p.DisplayID(), s.Code, day)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	cmd.Flags().StringVar(&staffCode, "staff", "", "Staff code")
	cmd.Flags().IntVar(&day, "day", 0, "Day of month")
	period.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("staff")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newRosterShowCmd(app *App) *cobra.Command {
	var projectRef string
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a project's roster for a month",
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

			sheet, err := app.Rosters.GetSheet(ctx, p.ID, year, month)
			if errors.Is(err, domain.ErrNotFound) {
				sheet = &domain.RosterSheet{Roster: domain.Roster{ProjectID: p.ID, Year: year, Month: month}}
			} else if err != nil {
				return err
			}

			types, err := app.ShiftTypes.List(ctx)
			if err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewRosterView(sheet), func() string {
				return formatter.FormatRoster(p, sheet, types)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Project short ID or UUID")
	period.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// importView is the JSON shape printed after a roster import.
type importView struct {
	ProjectID  string `json:"project_id"`
	RosterID   string `json:"roster_id"`
	Period     string `json:"period"`
	StaffCount int    `json:"staff_count"`
	EntryCount int    `json:"entry_count"`
}

func newRosterImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a roster grid from a YAML or JSON file",
		Long: "Import a roster grid. Every row is validated before anything is written;\n" +
			"cells in the file replace existing cells, other cells are left in place.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Rosters.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			view := importView{
				ProjectID:  res.Project.ID,
				RosterID:   res.Roster.ID,
				Period:     res.Roster.Period(),
				StaffCount: res.StaffCount,
				EntryCount: res.EntryCount,
			}
			return printOut(cmd, app, view, func() string {
				return fmt.Sprintf("Imported %d entries for %d staff into %s %s",
					res.EntryCount, res.StaffCount, res.Project.DisplayID(), res.Roster.Period())
			})
		},
	}
}
