package service

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/alexanderramin/rostercost/internal/costing"
	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/repository"
	"github.com/alexanderramin/rostercost/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	projects   repository.ProjectRepo
	staff      repository.StaffRepo
	shiftTypes repository.ShiftTypeRepo
	rosters    repository.RosterRepo
	sharings   repository.CostSharingRepo
	engine     *costing.Engine
}

func newTestEnv(t *testing.T, opts ...costing.Option) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		projects:   repository.NewSQLiteProjectRepo(database),
		staff:      repository.NewSQLiteStaffRepo(database),
		shiftTypes: repository.NewSQLiteShiftTypeRepo(database),
		rosters:    repository.NewSQLiteRosterRepo(database),
		sharings:   repository.NewSQLiteCostSharingRepo(database),
		engine:     costing.NewEngine(repository.NewSQLiteCostStore(database), opts...),
	}
}

func (e *testEnv) project(t *testing.T, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, opts...)
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

func (e *testEnv) member(t *testing.T, projectID, code, wage string) *domain.Staff {
	t.Helper()
	s := testutil.NewTestStaff(projectID, code, testutil.WithWage(wage))
	require.NoError(t, e.staff.Create(context.Background(), s))
	return s
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, ev UseCaseEvent) {
	r.events = append(r.events, ev)
}

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
