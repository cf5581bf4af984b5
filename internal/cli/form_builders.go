package cli

import (
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/charmbracelet/huh"
)

// projectForm collects the fields "project add" needs. Values already given
// as flags are shown prefilled.
func projectForm(shortID, name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Short ID").
				Description("3-6 letters followed by 2-4 digits").
				Placeholder("SITE01").
				Value(shortID).
				Validate(validateShortID),
			huh.NewInput().
				Title("Project Name").
				Value(name).
				Validate(validateRequired),
		),
	).WithTheme(rosterHuhTheme()).WithShowHelp(false)
}

// shareForm asks for one outgoing edge: a destination project and a
// percentage.
func shareForm(source *domain.Project, projects []*domain.Project, destination, percent *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		if p.ID == source.ID || !p.Active {
			continue
		}
		options = append(options, huh.NewOption(p.DisplayID()+"  "+p.Name, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Share cost of " + source.DisplayID() + " with").
				Options(options...).
				Value(destination),
			huh.NewInput().
				Title("Percentage").
				Placeholder("30").
				Value(percent).
				Validate(validatePercent),
		),
	).WithTheme(rosterHuhTheme()).WithShowHelp(false)
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(rosterHuhTheme()).WithShowHelp(false)
}
