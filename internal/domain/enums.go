package domain

// CyclePolicy selects how cost-sharing edges are checked for cycles.
type CyclePolicy string

const (
	// CycleReciprocal rejects only a direct reciprocal edge (B→A given A→B).
	CycleReciprocal CyclePolicy = "reciprocal"
	// CycleGraph rejects any edge that closes a cycle of any length.
	CycleGraph CyclePolicy = "graph"
)

// ValidCyclePolicies is the canonical set of accepted cycle policy strings.
var ValidCyclePolicies = map[string]bool{
	string(CycleReciprocal): true,
	string(CycleGraph):      true,
}
