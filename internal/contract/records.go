package contract

import (
	"time"

	"github.com/alexanderramin/rostercost/internal/domain"
)

type ProjectView struct {
	ID        string    `json:"id"`
	ShortID   string    `json:"short_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProjectView(p *domain.Project) ProjectView {
	return ProjectView{ID: p.ID, ShortID: p.ShortID, Name: p.Name, Active: p.Active, CreatedAt: p.CreatedAt}
}

type StaffView struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"project_id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	WagePerDay float64 `json:"wage_per_day"`
	Active     bool    `json:"active"`
}

func NewStaffView(s *domain.Staff) StaffView {
	return StaffView{
		ID:         s.ID,
		ProjectID:  s.ProjectID,
		Code:       s.Code,
		Name:       s.Name,
		WagePerDay: Number(s.WagePerDay),
		Active:     s.Active,
	}
}

type StaffCostView struct {
	StaffID    string  `json:"staff_id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	WagePerDay float64 `json:"wage_per_day"`
	WorkedDays int     `json:"worked_days"`
	Total      float64 `json:"total"`
}

func NewStaffCostViews(costs []domain.StaffCost) []StaffCostView {
	out := make([]StaffCostView, 0, len(costs))
	for _, c := range costs {
		out = append(out, StaffCostView{
			StaffID:    c.StaffID,
			Code:       c.StaffCode,
			Name:       c.StaffName,
			WagePerDay: Number(c.WagePerDay),
			WorkedDays: c.WorkedDays,
			Total:      Number(c.Total),
		})
	}
	return out
}

type CostSharingView struct {
	ID                   string  `json:"id"`
	SourceProjectID      string  `json:"source_project_id"`
	DestinationProjectID string  `json:"destination_project_id"`
	Percentage           float64 `json:"percentage"`
}

func NewCostSharingView(c *domain.CostSharing) CostSharingView {
	return CostSharingView{
		ID:                   c.ID,
		SourceProjectID:      c.SourceProjectID,
		DestinationProjectID: c.DestinationProjectID,
		Percentage:           Number(c.Percentage),
	}
}

type ShiftTypeView struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	IsWorkShift bool   `json:"is_work_shift"`
}

func NewShiftTypeView(s *domain.ShiftType) ShiftTypeView {
	return ShiftTypeView{Code: s.Code, Name: s.Name, Color: s.Color, IsWorkShift: s.IsWorkShift}
}

// RosterView lists a roster's cells grouped by staff. Days maps day of
// month to shift code.
type RosterView struct {
	ProjectID string           `json:"project_id"`
	Period    string           `json:"period"`
	Staff     []RosterStaffRow `json:"staff"`
}

type RosterStaffRow struct {
	StaffID string         `json:"staff_id"`
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	Days    map[int]string `json:"days"`
}

func NewRosterView(sheet *domain.RosterSheet) RosterView {
	v := RosterView{
		ProjectID: sheet.Roster.ProjectID,
		Period:    sheet.Roster.Period(),
		Staff:     []RosterStaffRow{},
	}
	index := make(map[string]int)
	for _, l := range sheet.Lines {
		i, ok := index[l.StaffID]
		if !ok {
			i = len(v.Staff)
			index[l.StaffID] = i
			v.Staff = append(v.Staff, RosterStaffRow{StaffID: l.StaffID, Code: l.StaffCode, Name: l.StaffName, Days: map[int]string{}})
		}
		v.Staff[i].Days[l.Day] = l.ShiftCode
	}
	return v
}
