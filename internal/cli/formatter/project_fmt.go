package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects found.")
	}

	headers := []string{"ID", "NAME", "STATUS", "CREATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		id := p.ShortID
		if strings.TrimSpace(id) == "" {
			id = TruncID(p.ID)
		}
		if strings.TrimSpace(id) == "" {
			id = "--"
		}

		rows = append(rows, []string{
			id,
			Bold(p.Name),
			ActivePill(p.Active),
			Dim(HumanDate(p.CreatedAt)),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatStaffList renders a project's staff with their daily wage.
func FormatStaffList(project *domain.Project, staff []*domain.Staff) string {
	title := fmt.Sprintf("Staff · %s", project.DisplayID())
	if len(staff) == 0 {
		return RenderBox(title, Dim("No staff found."))
	}

	headers := []string{"CODE", "NAME", "WAGE/DAY", "STATUS"}
	rows := make([][]string, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, []string{
			s.Code,
			Bold(s.Name),
			FormatMoney(s.WagePerDay),
			ActivePill(s.Active),
		})
	}

	return RenderBox(title, RenderTable(headers, rows, 2))
}

// FormatShiftTypes renders the shift catalogue. Each code is drawn in its
// own color when one is set.
func FormatShiftTypes(types []*domain.ShiftType) string {
	if len(types) == 0 {
		return Dim("No shift types defined. Run 'rostercost shift seed' to load the reference set.")
	}

	headers := []string{"CODE", "NAME", "COUNTS"}
	rows := make([][]string, 0, len(types))
	for _, st := range types {
		code := st.Code
		if st.Color != "" {
			code = lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color)).Render(code)
		}
		counts := Dim("no")
		if st.IsWorkShift {
			counts = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{code, st.Name, counts})
	}

	return RenderBox("Shift types", RenderTable(headers, rows))
}

// FormatSharingList renders cost-sharing edges as source -> destination
// rows. names maps project IDs to display labels.
func FormatSharingList(edges []*domain.CostSharing, names map[string]string) string {
	if len(edges) == 0 {
		return Dim("No cost sharing configured.")
	}

	label := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return TruncID(id)
	}

	headers := []string{"FROM", "", "TO", "SHARE"}
	rows := make([][]string, 0, len(edges))
	for _, e := range edges {
		rows = append(rows, []string{
			label(e.SourceProjectID),
			Dim("→"),
			label(e.DestinationProjectID),
			FormatPercent(e.Percentage),
		})
	}

	return RenderBox("Cost sharing", RenderTable(headers, rows, 3))
}
