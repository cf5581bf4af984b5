package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftTypeService_SeedIsRepeatable(t *testing.T) {
	env := newTestEnv(t)
	svc := NewShiftTypeService(env.shiftTypes, env.uow)
	ctx := context.Background()

	n, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	_, err = svc.Seed(ctx)
	require.NoError(t, err)

	types, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 7)

	work := 0
	for _, st := range types {
		if st.IsWorkShift {
			work++
		}
	}
	assert.Equal(t, 4, work)
}

func TestShiftTypeService_UpsertRequiresCode(t *testing.T) {
	env := newTestEnv(t)
	svc := NewShiftTypeService(env.shiftTypes, env.uow)

	err := svc.Upsert(context.Background(), &domain.ShiftType{Code: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
