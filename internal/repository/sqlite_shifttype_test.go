package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftTypeRepo_UpsertReplaces(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteShiftTypeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.ShiftType{Code: "ดึก", Name: "Night", IsWorkShift: true}))
	require.NoError(t, repo.Upsert(ctx, &domain.ShiftType{Code: "ดึก", Name: "Night shift", IsWorkShift: false}))

	types, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Night shift", types[0].Name)
	assert.False(t, types[0].IsWorkShift)
}

func TestShiftTypeRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteShiftTypeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.ShiftType{Code: "OFF"}))
	require.NoError(t, repo.Delete(ctx, "OFF"))

	_, err := repo.GetByCode(ctx, "OFF")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "OFF"), domain.ErrNotFound)
}
