package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_SetEntryUpserts(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRosterService(env.rosters, env.uow)
	ctx := context.Background()
	proj := env.project(t, "Site")
	s := env.member(t, proj.ID, "S001", "450")

	require.NoError(t, svc.SetEntry(ctx, proj.ID, 2024, 1, s.ID, 15, "1"))
	require.NoError(t, svc.SetEntry(ctx, proj.ID, 2024, 1, s.ID, 15, "ลา"))

	sheet, err := svc.GetSheet(ctx, proj.ID, 2024, 1)
	require.NoError(t, err)
	require.Len(t, sheet.Lines, 1)
	assert.Equal(t, "ลา", sheet.Lines[0].ShiftCode)
	assert.Equal(t, 15, sheet.Lines[0].Day)
}

func TestRosterService_SetEntryValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRosterService(env.rosters, env.uow)
	ctx := context.Background()
	proj := env.project(t, "Site")
	other := env.project(t, "Other")
	s := env.member(t, proj.ID, "S001", "450")
	stranger := env.member(t, other.ID, "X001", "300")

	tests := []struct {
		name    string
		staffID string
		month   int
		day     int
		code    string
		want    error
	}{
		{"day past month end", s.ID, 2, 30, "1", domain.ErrInvalidInput},
		{"day zero", s.ID, 1, 0, "1", domain.ErrInvalidInput},
		{"bad month", s.ID, 13, 1, "1", domain.ErrInvalidInput},
		{"empty code", s.ID, 1, 1, " ", domain.ErrInvalidInput},
		{"staff of another project", stranger.ID, 1, 1, "1", domain.ErrInvalidInput},
		{"unknown staff", "ghost", 1, 1, "1", domain.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SetEntry(ctx, proj.ID, 2024, tc.month, tc.staffID, tc.day, tc.code)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Leap day is fine.
	require.NoError(t, svc.SetEntry(ctx, proj.ID, 2024, 2, s.ID, 29, "1"))
}

func TestRosterService_ClearEntry(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRosterService(env.rosters, env.uow)
	ctx := context.Background()
	proj := env.project(t, "Site")
	s := env.member(t, proj.ID, "S001", "450")

	require.NoError(t, svc.SetEntry(ctx, proj.ID, 2024, 1, s.ID, 1, "1"))
	require.NoError(t, svc.ClearEntry(ctx, proj.ID, 2024, 1, s.ID, 1))

	sheet, err := svc.GetSheet(ctx, proj.ID, 2024, 1)
	require.NoError(t, err)
	assert.Empty(t, sheet.Lines)

	require.ErrorIs(t, svc.ClearEntry(ctx, proj.ID, 2024, 5, s.ID, 1), domain.ErrNotFound)
}

func TestRosterService_ImportFile(t *testing.T) {
	env := newTestEnv(t)
	obs := &recordingObserver{}
	svc := NewRosterService(env.rosters, env.uow, obs)
	ctx := context.Background()
	proj := env.project(t, "Site")
	env.member(t, proj.ID, "S001", "450")
	env.member(t, proj.ID, "S002", "400")

	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`project: `+proj.ShortID+`
year: 2024
month: 1
rows:
  - staff: S001
    shifts: ["1", "2", "", "OFF"]
  - staff: S002
    shifts: ["ดึก"]
`), 0o644))

	result, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, result.Project.ID)
	assert.Equal(t, 2, result.StaffCount)
	assert.Equal(t, 4, result.EntryCount)

	sheet, err := svc.GetSheet(ctx, proj.ID, 2024, 1)
	require.NoError(t, err)
	assert.Len(t, sheet.Lines, 4)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "import-roster", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 4, obs.events[0].Fields["entries"])
}

func TestRosterService_ImportIsAllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	obs := &recordingObserver{}
	svc := NewRosterService(env.rosters, env.uow, obs)
	ctx := context.Background()
	proj := env.project(t, "Site")
	env.member(t, proj.ID, "S001", "450")

	grid := &importer.RosterImport{
		Project: proj.ShortID,
		Year:    2024,
		Month:   3,
		Rows: []importer.RowImport{
			{Staff: "S001", Shifts: []string{"1", "1", "1"}},
			{Staff: "S404", Shifts: []string{"1"}},
		},
	}
	_, err := svc.ImportGrid(ctx, grid)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "S404")

	// Neither the entries nor the roster itself survive.
	_, err = env.rosters.GetByPeriod(ctx, proj.ID, 2024, 3)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestRosterService_ImportUnknownProject(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRosterService(env.rosters, env.uow)

	_, err := svc.ImportGrid(context.Background(), &importer.RosterImport{
		Project: "NOPE01", Year: 2024, Month: 1,
		Rows: []importer.RowImport{{Staff: "S001"}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
