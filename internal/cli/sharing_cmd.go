package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/cli/formatter"
	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/service"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSharingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sharing",
		Short: "Configure how project costs are shared",
	}

	cmd.AddCommand(
		newSharingSetCmd(app),
		newSharingListCmd(app),
		newSharingCheckCmd(app),
	)

	return cmd
}

// parseShareArg parses a --to value of the form PROJECT=PERCENT.
func parseShareArg(s string) (string, decimal.Decimal, error) {
	ref, pct, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(ref) == "" {
		return "", decimal.Zero, fmt.Errorf("share %q must be PROJECT=PERCENT: %w", s, domain.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(pct, "%")))
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("share %q: percentage is not a number: %w", s, domain.ErrInvalidPercentage)
	}
	return strings.TrimSpace(ref), d, nil
}

func newSharingSetCmd(app *App) *cobra.Command {
	var to []string
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "set <project>",
		Short: "Replace a project's outgoing cost sharing",
		Long: "Replace every outgoing share of a project in one step. Shares are given as\n" +
			"--to PROJECT=PERCENT and may be repeated. The whole set is rejected when any\n" +
			"share is invalid or would close a sharing cycle; the previous set stays.",
		Example: "  rostercost sharing set SITE01 --to SITE02=30 --to SITE03=12.5\n" +
			"  rostercost sharing set SITE01 --clear",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if clearAll && len(to) > 0 {
				return fmt.Errorf("use either --to or --clear: %w", domain.ErrInvalidInput)
			}

			var shares []service.ShareInput
			switch {
			case clearAll:
			case len(to) > 0:
				for _, arg := range to {
					ref, pct, err := parseShareArg(arg)
					if err != nil {
						return err
					}
					dest, err := resolveProject(ctx, app, ref)
					if err != nil {
						return err
					}
					shares = append(shares, service.ShareInput{DestinationProjectID: dest.ID, Percentage: pct})
				}
			case app.interactive():
				if shares, err = promptShares(cmd, app, source); err != nil {
					return err
				}
			default:
				return fmt.Errorf("no shares given (use --to PROJECT=PERCENT or --clear): %w", domain.ErrInvalidInput)
			}

			edges, err := app.Sharing.ReplaceOutgoing(ctx, source.ID, shares)
			if err != nil {
				return err
			}

			names, err := projectNames(ctx, app)
			if err != nil {
				return err
			}
			views := make([]contract.CostSharingView, 0, len(edges))
			for _, e := range edges {
				views = append(views, contract.NewCostSharingView(e))
			}
			return printOut(cmd, app, views, func() string {
				if len(edges) == 0 {
					return fmt.Sprintf("Cleared cost sharing of %s", source.DisplayID())
				}
				return formatter.FormatSharingList(edges, names)
			})
		},
	}

	cmd.Flags().StringArrayVar(&to, "to", nil, "Destination and percentage, e.g. SITE02=30 (repeatable)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove all outgoing shares")

	return cmd
}

// promptShares asks for outgoing shares one at a time until the user stops.
func promptShares(cmd *cobra.Command, app *App, source *domain.Project) ([]service.ShareInput, error) {
	projects, err := app.Projects.List(cmd.Context(), false)
	if err != nil {
		return nil, err
	}

	var shares []service.ShareInput
	for {
		var dest, pct string
		if err := shareForm(source, projects, &dest, &pct).Run(); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(pct))
		if err != nil {
			return nil, fmt.Errorf("percentage %q: %w", pct, domain.ErrInvalidPercentage)
		}
		shares = append(shares, service.ShareInput{DestinationProjectID: dest, Percentage: d})

		more := false
		if err := confirmForm("Add another share?", &more).Run(); err != nil {
			return nil, err
		}
		if !more {
			return shares, nil
		}
	}
}

func newSharingListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost sharing edges",
		Long:  "List every cost sharing edge, or only those touching --project.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var edges []*domain.CostSharing
			if projectRef == "" {
				all, err := app.Sharing.ListAll(ctx)
				if err != nil {
					return err
				}
				edges = all
			} else {
				p, err := resolveProject(ctx, app, projectRef)
				if err != nil {
					return err
				}
				out, err := app.Sharing.ListOutgoing(ctx, p.ID)
				if err != nil {
					return err
				}
				in, err := app.Sharing.ListIncoming(ctx, p.ID)
				if err != nil {
					return err
				}
				edges = append(out, in...)
			}

			names, err := projectNames(ctx, app)
			if err != nil {
				return err
			}
			views := make([]contract.CostSharingView, 0, len(edges))
			for _, e := range edges {
				views = append(views, contract.NewCostSharingView(e))
			}
			return printOut(cmd, app, views, func() string {
				return formatter.FormatSharingList(edges, names)
			})
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Only edges from or to this project")

	return cmd
}

// graphCheckView is the JSON shape of "sharing check".
type graphCheckView struct {
	OK    bool     `json:"ok"`
	Cycle []string `json:"cycle,omitempty"`
}

func newSharingCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the stored sharing graph for cycles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cycle, checkErr := app.Sharing.CheckGraph(ctx)
			if checkErr != nil && cycle == nil {
				return checkErr
			}

			names, err := projectNames(ctx, app)
			if err != nil {
				return err
			}
			labels := make([]string, 0, len(cycle))
			for _, id := range cycle {
				if n, ok := names[id]; ok {
					labels = append(labels, n)
				} else {
					labels = append(labels, id)
				}
			}

			view := graphCheckView{OK: cycle == nil, Cycle: labels}
			if err := printOut(cmd, app, view, func() string {
				if cycle == nil {
					return formatter.StyleGreen.Render("✔ No sharing cycles")
				}
				return formatter.StyleRed.Render("✖ Sharing cycle: ") + strings.Join(labels, " → ")
			}); err != nil {
				return err
			}
			return checkErr
		},
	}
}
