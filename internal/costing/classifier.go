package costing

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// ShiftClassifier decides whether a shift code counts as a worked day.
type ShiftClassifier interface {
	IsWorkingShift(code string) bool
}

// codeSet is a ShiftClassifier over an exact set of working codes. Codes are
// compared as stored; "OFF" and "off" are different codes.
type codeSet map[string]struct{}

func (s codeSet) IsWorkingShift(code string) bool {
	_, ok := s[code]
	return ok
}

// NewFixedClassifier returns a classifier that treats exactly codes as worked.
func NewFixedClassifier(codes []string) ShiftClassifier {
	set := make(codeSet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// NewTableClassifier builds a classifier from shift type records. Codes not
// present in types, or present with IsWorkShift unset, are not worked. An
// empty table falls back to the fixed fallback codes.
func NewTableClassifier(types []*domain.ShiftType, fallback []string) ShiftClassifier {
	if len(types) == 0 {
		return NewFixedClassifier(fallback)
	}
	set := make(codeSet)
	for _, t := range types {
		if t.IsWorkShift {
			set[t.Code] = struct{}{}
		}
	}
	return set
}

// LoadClassifier reads the current shift types from store and builds a
// table classifier.
func LoadClassifier(ctx context.Context, store Store, fallback []string) (ShiftClassifier, error) {
	types, err := store.ListShiftTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading shift types: %w", err)
	}
	return NewTableClassifier(types, fallback), nil
}
