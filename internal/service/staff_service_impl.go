package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/repository"
	"github.com/google/uuid"
)

type staffService struct {
	staff    repository.StaffRepo
	projects repository.ProjectRepo
}

func NewStaffService(staff repository.StaffRepo, projects repository.ProjectRepo) StaffService {
	return &staffService{staff: staff, projects: projects}
}

func (s *staffService) Create(ctx context.Context, st *domain.Staff) error {
	st.Code = strings.TrimSpace(st.Code)
	if err := st.Validate(); err != nil {
		return err
	}
	if _, err := s.projects.GetByID(ctx, st.ProjectID); err != nil {
		return fmt.Errorf("staff project: %w", err)
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	st.Active = true
	return s.staff.Create(ctx, st)
}

func (s *staffService) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *staffService) GetByCode(ctx context.Context, projectID, code string) (*domain.Staff, error) {
	return s.staff.GetByCode(ctx, projectID, strings.TrimSpace(code))
}

func (s *staffService) ListByProject(ctx context.Context, projectID string, includeInactive bool) ([]*domain.Staff, error) {
	return s.staff.ListByProject(ctx, projectID, includeInactive)
}

// Update changes name, code or wage. A new wage applies to every period
// computed afterwards, including past months.
func (s *staffService) Update(ctx context.Context, st *domain.Staff) error {
	st.Code = strings.TrimSpace(st.Code)
	if err := st.Validate(); err != nil {
		return err
	}
	st.UpdatedAt = time.Now().UTC()
	return s.staff.Update(ctx, st)
}

func (s *staffService) Deactivate(ctx context.Context, id string) error {
	return s.staff.SetActive(ctx, id, false)
}
