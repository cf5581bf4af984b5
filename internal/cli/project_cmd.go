package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/cli/formatter"
	"github.com/alexanderramin/rostercost/internal/contract"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectDeactivateCmd(app),
		newProjectActivateCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var shortID, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (shortID == "" || name == "") && app.interactive() {
				if err := projectForm(&shortID, &name).Run(); err != nil {
					return err
				}
			}

			p := &domain.Project{
				ShortID: strings.ToUpper(strings.TrimSpace(shortID)),
				Name:    strings.TrimSpace(name),
			}
			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewProjectView(p), func() string {
				return fmt.Sprintf("Created project %s [%s]", p.Name, p.ShortID)
			})
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. SITE01)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), all)
			if err != nil {
				return err
			}

			views := make([]contract.ProjectView, 0, len(projects))
			for _, p := range projects {
				views = append(views, contract.NewProjectView(p))
			}
			return printOut(cmd, app, views, func() string {
				return formatter.FormatProjectList(projects)
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive projects")

	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var shortID, name string

	cmd := &cobra.Command{
		Use:   "update <project>",
		Short: "Update project fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("id") && !cmd.Flags().Changed("name") {
				return fmt.Errorf("nothing to update (use --id or --name): %w", domain.ErrInvalidInput)
			}
			if cmd.Flags().Changed("id") {
				p.ShortID = shortID
			}
			if cmd.Flags().Changed("name") {
				p.Name = strings.TrimSpace(name)
			}

			if err := app.Projects.Update(cmd.Context(), p); err != nil {
				return err
			}

			return printOut(cmd, app, contract.NewProjectView(p), func() string {
				return fmt.Sprintf("Updated project %s [%s]", p.Name, p.ShortID)
			})
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "New short ID")
	cmd.Flags().StringVar(&name, "name", "", "New project name")

	return cmd
}

func newProjectDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <project>",
		Short: "Hide a project from cost reports",
		Long: "Deactivate a project. Its rosters and cost sharing are kept, and edges\n" +
			"pointing at it still move cost off their source projects.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setProjectActive(cmd, app, args[0], false)
		},
	}
}

func newProjectActivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <project>",
		Short: "Include a deactivated project in cost reports again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setProjectActive(cmd, app, args[0], true)
		},
	}
}

func setProjectActive(cmd *cobra.Command, app *App, ref string, active bool) error {
	ctx := cmd.Context()
	p, err := resolveProject(ctx, app, ref)
	if err != nil {
		return err
	}

	verb := "Deactivated"
	if active {
		verb = "Activated"
		err = app.Projects.Activate(ctx, p.ID)
	} else {
		err = app.Projects.Deactivate(ctx, p.ID)
	}
	if err != nil {
		return err
	}
	p.Active = active

	return printOut(cmd, app, contract.NewProjectView(p), func() string {
		return fmt.Sprintf("%s project %s [%s]", verb, p.Name, p.DisplayID())
	})
}
