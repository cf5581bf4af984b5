package costing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/rostercost/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine computes net project costs and guards the cost-sharing graph.
// It holds no state between calls; every call reads fresh data from the
// store.
type Engine struct {
	store   Store
	agg     *Aggregator
	policy  domain.CyclePolicy
	workers int
	codes   []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithCyclePolicy selects the cycle check applied to new edges.
func WithCyclePolicy(p domain.CyclePolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithWorkers bounds how many projects the report computes concurrently.
// Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithFallbackWorkCodes sets the working codes used while no shift types
// are configured.
func WithFallbackWorkCodes(codes []string) Option {
	return func(e *Engine) { e.codes = codes }
}

// NewEngine creates an Engine over store. The defaults are the graph cycle
// policy and a sequential report.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{store: store, policy: domain.CycleGraph, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = 1
	}
	e.agg = NewAggregator(store, e.codes)
	return e
}

// Aggregator returns the engine's cost aggregator.
func (e *Engine) Aggregator() *Aggregator { return e.agg }

// Policy returns the configured cycle policy.
func (e *Engine) Policy() domain.CyclePolicy { return e.policy }

// ComputeNetCost applies the project's sharing edges to originalCost.
// Outgoing edges take their percentage of originalCost; incoming edges take
// their percentage of the source project's own pre-sharing cost. Sharing is
// one hop only and the result is never clamped.
func (e *Engine) ComputeNetCost(ctx context.Context, projectID string, year, month int, originalCost decimal.Decimal) (*domain.CostSharingCalculation, error) {
	project, err := e.store.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project %s: %w", projectID, err)
	}

	calc := &domain.CostSharingCalculation{
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		OriginalCost: originalCost,
		SharedOut:    decimal.Zero,
		SharedIn:     decimal.Zero,
	}
	names := newNameLookup(e.store)

	outgoing, err := e.store.FindOutgoingEdges(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading outgoing edges of %s: %w", projectID, err)
	}
	for _, edge := range outgoing {
		name, err := names.get(ctx, edge.DestinationProjectID)
		if err != nil {
			return nil, err
		}
		amount := edge.Share(originalCost)
		calc.SharedOut = calc.SharedOut.Add(amount)
		calc.Outgoing = append(calc.Outgoing, domain.ShareLine{
			CounterpartyID:   edge.DestinationProjectID,
			CounterpartyName: name,
			Percentage:       edge.Percentage,
			Base:             originalCost,
			Amount:           amount,
		})
	}

	incoming, err := e.store.FindIncomingEdges(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading incoming edges of %s: %w", projectID, err)
	}
	for _, edge := range incoming {
		name, err := names.get(ctx, edge.SourceProjectID)
		if err != nil {
			return nil, err
		}
		base, err := e.agg.ProjectOriginalCost(ctx, edge.SourceProjectID, year, month)
		if err != nil {
			return nil, fmt.Errorf("computing cost of source project %s: %w", edge.SourceProjectID, err)
		}
		amount := edge.Share(base)
		calc.SharedIn = calc.SharedIn.Add(amount)
		calc.Incoming = append(calc.Incoming, domain.ShareLine{
			CounterpartyID:   edge.SourceProjectID,
			CounterpartyName: name,
			Percentage:       edge.Percentage,
			Base:             base,
			Amount:           amount,
		})
	}

	calc.NetCost = originalCost.Sub(calc.SharedOut).Add(calc.SharedIn)
	return calc, nil
}

// WouldCreateCycle reports whether destination already shares back to
// source. It only looks at the direct reciprocal edge.
func (e *Engine) WouldCreateCycle(ctx context.Context, source, destination string) (bool, error) {
	_, err := e.store.FindEdge(ctx, destination, source)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up edge %s -> %s: %w", destination, source, err)
	}
	return true, nil
}

// ValidateNewEdge checks a single proposed edge against the current graph
// under the engine's cycle policy.
func (e *Engine) ValidateNewEdge(ctx context.Context, source, destination string) error {
	if source == destination {
		return fmt.Errorf("project cannot share cost with itself: %w", domain.ErrInvalidInput)
	}
	switch e.policy {
	case domain.CycleReciprocal:
		cyclic, err := e.WouldCreateCycle(ctx, source, destination)
		if err != nil {
			return err
		}
		if cyclic {
			return fmt.Errorf("%s already shares cost with %s: %w", destination, source, domain.ErrCycleRejected)
		}
		return nil
	default:
		edges, err := e.store.ListEdges(ctx)
		if err != nil {
			return fmt.Errorf("loading cost sharing edges: %w", err)
		}
		if WouldCreateCycleInGraph(edges, source, destination) {
			return fmt.Errorf("%s already reaches %s through cost sharing: %w", destination, source, domain.ErrCycleRejected)
		}
		return nil
	}
}

// ValidateEdgeSet checks that replacing projectID's outgoing edges with
// proposed keeps the graph free of cycles. Existing outgoing edges of
// projectID are ignored because they are about to be replaced.
func (e *Engine) ValidateEdgeSet(ctx context.Context, projectID string, proposed []*domain.CostSharing) error {
	if e.policy == domain.CycleReciprocal {
		for _, p := range proposed {
			if err := e.ValidateNewEdge(ctx, projectID, p.DestinationProjectID); err != nil {
				return err
			}
		}
		return nil
	}

	all, err := e.store.ListEdges(ctx)
	if err != nil {
		return fmt.Errorf("loading cost sharing edges: %w", err)
	}
	others := make([]*domain.CostSharing, 0, len(all))
	for _, edge := range all {
		if edge.SourceProjectID != projectID {
			others = append(others, edge)
		}
	}
	for _, p := range proposed {
		if p.DestinationProjectID == projectID {
			return fmt.Errorf("project cannot share cost with itself: %w", domain.ErrInvalidInput)
		}
		if WouldCreateCycleInGraph(others, projectID, p.DestinationProjectID) {
			return fmt.Errorf("%s already reaches %s through cost sharing: %w", p.DestinationProjectID, projectID, domain.ErrCycleRejected)
		}
	}
	return nil
}

// CheckGraph scans the stored edges for a cycle. When one exists it returns
// the project ids on it and an error wrapping domain.ErrCycleRejected.
func (e *Engine) CheckGraph(ctx context.Context) ([]string, error) {
	edges, err := e.store.ListEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cost sharing edges: %w", err)
	}
	if cycle := DetectCycle(edges); cycle != nil {
		return cycle, fmt.Errorf("cycle %s: %w", strings.Join(cycle, " -> "), domain.ErrCycleRejected)
	}
	return nil, nil
}

// nameLookup memoizes project names for the duration of one computation.
type nameLookup struct {
	store Store
	names map[string]string
}

func newNameLookup(store Store) *nameLookup {
	return &nameLookup{store: store, names: make(map[string]string)}
}

func (l *nameLookup) get(ctx context.Context, id string) (string, error) {
	if n, ok := l.names[id]; ok {
		return n, nil
	}
	p, err := l.store.FindProjectByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("loading counterparty project %s: %w", id, err)
	}
	l.names[id] = p.Name
	return p.Name, nil
}
