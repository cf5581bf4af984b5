package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShortID_Valid(t *testing.T) {
	cases := []string{"SITE01", "BKK0012", "ABC1234", "ABCDEF01", "XYZ99"}
	for _, id := range cases {
		p := &Project{ShortID: id}
		assert.NoError(t, p.ValidateShortID(), "should accept %q", id)
	}
}

func TestValidateShortID_Empty(t *testing.T) {
	p := &Project{ShortID: ""}
	err := p.ValidateShortID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestValidateShortID_Lowercase(t *testing.T) {
	p := &Project{ShortID: "site01"}
	err := p.ValidateShortID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercase")
}

func TestValidateShortID_TooShort(t *testing.T) {
	p := &Project{ShortID: "AB1"}
	assert.Error(t, p.ValidateShortID())
}

func TestValidate_RequiresName(t *testing.T) {
	p := &Project{ShortID: "SITE01", Name: "  "}
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDisplayID_WithShortID(t *testing.T) {
	p := &Project{ID: "550e8400-e29b-41d4-a716-446655440000", ShortID: "SITE01"}
	assert.Equal(t, "SITE01", p.DisplayID())
}

func TestDisplayID_WithoutShortID(t *testing.T) {
	p := &Project{ID: "550e8400-e29b-41d4-a716-446655440000"}
	assert.Equal(t, "550e8400", p.DisplayID())
}

func TestDisplayID_ShortUUID(t *testing.T) {
	p := &Project{ID: "abc"}
	assert.Equal(t, "abc", p.DisplayID())
}
