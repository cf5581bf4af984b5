package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/repository"
)

type shiftTypeService struct {
	shiftTypes repository.ShiftTypeRepo
	uow        db.UnitOfWork
}

func NewShiftTypeService(shiftTypes repository.ShiftTypeRepo, uow db.UnitOfWork) ShiftTypeService {
	return &shiftTypeService{shiftTypes: shiftTypes, uow: uow}
}

func (s *shiftTypeService) Upsert(ctx context.Context, st *domain.ShiftType) error {
	st.Code = strings.TrimSpace(st.Code)
	if err := st.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	return s.shiftTypes.Upsert(ctx, st)
}

func (s *shiftTypeService) List(ctx context.Context) ([]*domain.ShiftType, error) {
	return s.shiftTypes.List(ctx)
}

func (s *shiftTypeService) Delete(ctx context.Context, code string) error {
	return s.shiftTypes.Delete(ctx, code)
}

func (s *shiftTypeService) Seed(ctx context.Context) (int, error) {
	defaults := domain.DefaultShiftTypes()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShiftTypes := repository.NewSQLiteShiftTypeRepo(tx)
		now := time.Now().UTC()
		for _, st := range defaults {
			st.CreatedAt = now
			st.UpdatedAt = now
			if err := txShiftTypes.Upsert(ctx, st); err != nil {
				return fmt.Errorf("seeding shift %q: %w", st.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(defaults), nil
}
