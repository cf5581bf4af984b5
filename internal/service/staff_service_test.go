package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStaffService(env.staff, env.projects)
	ctx := context.Background()
	proj := env.project(t, "Site")

	s := &domain.Staff{ProjectID: proj.ID, Code: " S001 ", Name: "Somchai", WagePerDay: decimal.RequireFromString("450.25")}
	require.NoError(t, svc.Create(ctx, s))
	assert.Equal(t, "S001", s.Code)

	fetched, err := svc.GetByCode(ctx, proj.ID, "S001")
	require.NoError(t, err)
	assert.Equal(t, "450.25", fetched.WagePerDay.String())
}

func TestStaffService_Create_Rejects(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStaffService(env.staff, env.projects)
	ctx := context.Background()
	proj := env.project(t, "Site")

	err := svc.Create(ctx, &domain.Staff{ProjectID: proj.ID, Code: "S1", Name: "Zero", WagePerDay: decimal.Zero})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Create(ctx, &domain.Staff{ProjectID: proj.ID, Code: "S2", Name: "Negative", WagePerDay: decimal.NewFromInt(-5)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Create(ctx, &domain.Staff{ProjectID: "missing", Code: "S3", Name: "Orphan", WagePerDay: decimal.NewFromInt(5)})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStaffService_UpdateAndDeactivate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewStaffService(env.staff, env.projects)
	ctx := context.Background()
	proj := env.project(t, "Site")
	s := env.member(t, proj.ID, "S001", "400")

	s.WagePerDay = decimal.NewFromInt(420)
	require.NoError(t, svc.Update(ctx, s))
	require.NoError(t, svc.Deactivate(ctx, s.ID))

	active, err := svc.ListByProject(ctx, proj.ID, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListByProject(ctx, proj.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "420", all[0].WagePerDay.String())
}
