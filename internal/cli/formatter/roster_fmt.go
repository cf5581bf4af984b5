package formatter

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatRoster renders a roster as a staff × day grid. Working shifts are
// drawn in the shift type's color; empty cells show a dim dot.
func FormatRoster(project *domain.Project, sheet *domain.RosterSheet, types []*domain.ShiftType) string {
	ro := sheet.Roster
	title := fmt.Sprintf("Roster · %s · %s", project.DisplayID(), PeriodLabel(ro.Year, ro.Month))
	if len(sheet.Lines) == 0 {
		return RenderBox(title, Dim("Roster is empty."))
	}

	colors := make(map[string]lipgloss.Style, len(types))
	for _, st := range types {
		if st.Color != "" {
			colors[st.Code] = lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color))
		}
	}

	type staffRow struct {
		code string
		days map[int]string
	}
	var order []string
	byStaff := make(map[string]*staffRow)
	for _, l := range sheet.Lines {
		r, ok := byStaff[l.StaffID]
		if !ok {
			r = &staffRow{code: l.StaffCode, days: make(map[int]string)}
			byStaff[l.StaffID] = r
			order = append(order, l.StaffID)
		}
		r.days[l.Day] = l.ShiftCode
	}
	sort.SliceStable(order, func(i, j int) bool {
		return byStaff[order[i]].code < byStaff[order[j]].code
	})

	n := domain.DaysInMonth(ro.Year, ro.Month)
	headers := make([]string, 0, n+1)
	headers = append(headers, "STAFF")
	for d := 1; d <= n; d++ {
		headers = append(headers, strconv.Itoa(d))
	}

	rows := make([][]string, 0, len(order))
	for _, id := range order {
		r := byStaff[id]
		row := make([]string, 0, n+1)
		row = append(row, r.code)
		for d := 1; d <= n; d++ {
			code, ok := r.days[d]
			if !ok {
				row = append(row, Dim("·"))
				continue
			}
			if style, colored := colors[code]; colored {
				code = style.Render(code)
			}
			row = append(row, code)
		}
		rows = append(rows, row)
	}

	return RenderBox(title, RenderTable(headers, rows))
}
