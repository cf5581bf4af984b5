package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/alexanderramin/rostercost/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.ShortID = strings.ToUpper(strings.TrimSpace(p.ShortID))
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Active = true
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	ref = strings.TrimSpace(ref)
	p, err := s.projects.GetByShortID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.projects.GetByID(ctx, ref)
}

func (s *projectService) List(ctx context.Context, includeInactive bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeInactive)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.ShortID = strings.ToUpper(strings.TrimSpace(p.ShortID))
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// Deactivate hides the project from reports. Its rosters and edges are kept
// so earlier periods can still be recomputed.
func (s *projectService) Deactivate(ctx context.Context, id string) error {
	return s.projects.SetActive(ctx, id, false)
}

func (s *projectService) Activate(ctx context.Context, id string) error {
	return s.projects.SetActive(ctx, id, true)
}
