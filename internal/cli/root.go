package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/alexanderramin/rostercost/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects   service.ProjectService
	Staff      service.StaffService
	ShiftTypes service.ShiftTypeService
	Rosters    service.RosterService
	Sharing    service.CostSharingService
	Cost       service.CostService

	// IsInteractive reports whether stdin is a terminal, which enables huh
	// prompts for missing flags. Nil means never prompt.
	IsInteractive func() bool
	// IsTerminal reports whether stdout is a terminal. When it is not, output
	// defaults to JSON. Nil means not a terminal.
	IsTerminal func() bool
	// Now returns the current time; the default period is derived from it.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "rostercost" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "rostercost",
		Short:         "Roster-based labor cost allocation across projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("json", false, "Print JSON (default when stdout is not a terminal)")

	root.AddCommand(
		newProjectCmd(app),
		newStaffCmd(app),
		newShiftCmd(app),
		newRosterCmd(app),
		newSharingCmd(app),
		newCostCmd(app),
	)

	return root
}

// wantJSON reports whether cmd should print JSON. An explicit --json flag
// wins; otherwise JSON is used when stdout is not a terminal.
func wantJSON(cmd *cobra.Command, app *App) bool {
	if f := cmd.Flag("json"); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	return app.IsTerminal == nil || !app.IsTerminal()
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printOut writes either the JSON view or the rendered text, depending on
// the output mode.
func printOut(cmd *cobra.Command, app *App, view any, render func() string) error {
	if wantJSON(cmd, app) {
		return writeJSON(cmd, view)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), render())
	return err
}

// ReportError prints a failed command's error to its error stream, as an
// ErrorView in JSON mode or as a plain line otherwise.
func ReportError(cmd *cobra.Command, app *App, err error) {
	if wantJSON(cmd, app) {
		enc := json.NewEncoder(cmd.ErrOrStderr())
		enc.SetIndent("", "  ")
		_ = enc.Encode(contract.NewErrorView(err))
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
