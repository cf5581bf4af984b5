package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatProjectCost renders one project's cost breakdown: the original cost,
// each outgoing and incoming share, and the resulting net cost.
func FormatProjectCost(calc *domain.CostSharingCalculation, year, month int) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(calc.ProjectName) + "  " + Dim(PeriodLabel(year, month)) + "\n\n")

	summary := [][]string{
		{"Original cost", Amount(calc.OriginalCost)},
		{"Shared out", SharedOut(calc.SharedOut)},
		{"Shared in", SharedIn(calc.SharedIn)},
		{"Net cost", StyleBold.Render(FormatMoney(calc.NetCost))},
	}
	b.WriteString(RenderTable([]string{"", "AMOUNT"}, summary, 1))

	if len(calc.Outgoing) > 0 {
		b.WriteString("\n" + Header("Shared out") + "\n")
		b.WriteString(formatShareLines(calc.Outgoing, "TO"))
	}
	if len(calc.Incoming) > 0 {
		b.WriteString("\n" + Header("Shared in") + "\n")
		b.WriteString(formatShareLines(calc.Incoming, "FROM"))
	}

	return RenderBox("Cost breakdown", strings.TrimRight(b.String(), "\n"))
}

func formatShareLines(lines []domain.ShareLine, direction string) string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.CounterpartyName,
			FormatPercent(l.Percentage),
			FormatMoney(l.Base),
			FormatMoney(l.Amount),
		})
	}
	return RenderTable([]string{direction, "SHARE", "OF", "AMOUNT"}, rows, 1, 2, 3)
}

// FormatCostReport renders the multi-project report with a totals row.
// Rows appear in the order given.
func FormatCostReport(calcs []*domain.CostSharingCalculation, year, month int) string {
	title := fmt.Sprintf("Cost report · %s", PeriodLabel(year, month))
	if len(calcs) == 0 {
		return RenderBox(title, Dim("No active projects."))
	}

	headers := []string{"PROJECT", "ORIGINAL", "SHARED OUT", "SHARED IN", "NET"}
	rows := make([][]string, 0, len(calcs)+1)
	original, out, in, net := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, c := range calcs {
		rows = append(rows, []string{
			Bold(c.ProjectName),
			Amount(c.OriginalCost),
			SharedOut(c.SharedOut),
			SharedIn(c.SharedIn),
			Amount(c.NetCost),
		})
		original = original.Add(c.OriginalCost)
		out = out.Add(c.SharedOut)
		in = in.Add(c.SharedIn)
		net = net.Add(c.NetCost)
	}
	rows = append(rows, []string{
		StyleHeader.Render("TOTAL"),
		Bold(FormatMoney(original)),
		Bold(FormatMoney(out)),
		Bold(FormatMoney(in)),
		Bold(FormatMoney(net)),
	})

	return RenderBox(title, RenderTable(headers, rows, 1, 2, 3, 4))
}

// FormatStaffCosts renders per-staff worked days and wage totals for one
// project and period.
func FormatStaffCosts(project *domain.Project, costs []domain.StaffCost, year, month int) string {
	title := fmt.Sprintf("Staff cost · %s · %s", project.DisplayID(), PeriodLabel(year, month))
	if len(costs) == 0 {
		return RenderBox(title, Dim("No worked shifts in this period."))
	}

	headers := []string{"CODE", "NAME", "DAYS", "WAGE/DAY", "TOTAL"}
	rows := make([][]string, 0, len(costs)+1)
	total := decimal.Zero
	days := 0
	for _, c := range costs {
		rows = append(rows, []string{
			c.StaffCode,
			c.StaffName,
			fmt.Sprintf("%d", c.WorkedDays),
			FormatMoney(c.WagePerDay),
			Amount(c.Total),
		})
		total = total.Add(c.Total)
		days += c.WorkedDays
	}
	rows = append(rows, []string{
		StyleHeader.Render("TOTAL"),
		"",
		Bold(fmt.Sprintf("%d", days)),
		"",
		Bold(FormatMoney(total)),
	})

	return RenderBox(title, RenderTable(headers, rows, 2, 3, 4))
}
