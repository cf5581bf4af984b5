package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/rostercost/internal/domain"
)

// MemoryStore is an in-memory costing.Store. Errors can be injected per
// method name through FailWith.
type MemoryStore struct {
	mu         sync.Mutex
	projects   []*domain.Project
	edges      []*domain.CostSharing
	rosters    map[string]*domain.RosterSheet
	shiftTypes []*domain.ShiftType
	failures   map[string]error
	calls      map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rosters:  make(map[string]*domain.RosterSheet),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

func rosterKey(projectID string, year, month int) string {
	return fmt.Sprintf("%s/%04d-%02d", projectID, year, month)
}

func (m *MemoryStore) AddProject(p *domain.Project) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append(m.projects, p)
	return m
}

func (m *MemoryStore) AddEdge(e *domain.CostSharing) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edges = append(m.edges, e)
	return m
}

// SetRoster stores lines as the project's roster for the period.
func (m *MemoryStore) SetRoster(projectID string, year, month int, lines []domain.RosterLine) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := NewTestRoster(projectID, year, month)
	m.rosters[rosterKey(projectID, year, month)] = &domain.RosterSheet{Roster: *r, Lines: lines}
	return m
}

func (m *MemoryStore) SetShiftTypes(types ...*domain.ShiftType) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shiftTypes = types
	return m
}

// FailWith makes every later call to method return err.
func (m *MemoryStore) FailWith(method string, err error) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = err
	return m
}

// Calls returns how many times method was called.
func (m *MemoryStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MemoryStore) enter(method string) error {
	m.calls[method]++
	return m.failures[method]
}

func (m *MemoryStore) FindProjectByID(_ context.Context, id string) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindProjectByID"); err != nil {
		return nil, err
	}
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
}

func (m *MemoryStore) FindActiveProjects(_ context.Context) ([]*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindActiveProjects"); err != nil {
		return nil, err
	}
	var out []*domain.Project
	for _, p := range m.projects {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) FindOutgoingEdges(_ context.Context, projectID string) ([]*domain.CostSharing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindOutgoingEdges"); err != nil {
		return nil, err
	}
	var out []*domain.CostSharing
	for _, e := range m.edges {
		if e.SourceProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStore) FindIncomingEdges(_ context.Context, projectID string) ([]*domain.CostSharing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindIncomingEdges"); err != nil {
		return nil, err
	}
	var out []*domain.CostSharing
	for _, e := range m.edges {
		if e.DestinationProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStore) FindEdge(_ context.Context, sourceID, destinationID string) (*domain.CostSharing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindEdge"); err != nil {
		return nil, err
	}
	for _, e := range m.edges {
		if e.SourceProjectID == sourceID && e.DestinationProjectID == destinationID {
			return e, nil
		}
	}
	return nil, fmt.Errorf("cost sharing %s -> %s: %w", sourceID, destinationID, domain.ErrNotFound)
}

func (m *MemoryStore) ListEdges(_ context.Context) ([]*domain.CostSharing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListEdges"); err != nil {
		return nil, err
	}
	return append([]*domain.CostSharing(nil), m.edges...), nil
}

func (m *MemoryStore) FindRoster(_ context.Context, projectID string, year, month int) (*domain.RosterSheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("FindRoster"); err != nil {
		return nil, err
	}
	sheet, ok := m.rosters[rosterKey(projectID, year, month)]
	if !ok {
		return nil, fmt.Errorf("roster %s: %w", rosterKey(projectID, year, month), domain.ErrNotFound)
	}
	return sheet, nil
}

func (m *MemoryStore) ListShiftTypes(_ context.Context) ([]*domain.ShiftType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("ListShiftTypes"); err != nil {
		return nil, err
	}
	return append([]*domain.ShiftType(nil), m.shiftTypes...), nil
}
