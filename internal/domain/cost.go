package domain

import "github.com/shopspring/decimal"

// ShareLine explains one edge's contribution to a project's shared amounts.
type ShareLine struct {
	CounterpartyID   string
	CounterpartyName string
	Percentage       decimal.Decimal
	// Base is the amount the percentage was applied to: this project's
	// original cost for outgoing lines, the source's for incoming lines.
	Base   decimal.Decimal
	Amount decimal.Decimal
}

// CostSharingCalculation is a project's cost for one period after sharing.
// NetCost = OriginalCost - SharedOut + SharedIn and is never clamped.
type CostSharingCalculation struct {
	ProjectID    string
	ProjectName  string
	OriginalCost decimal.Decimal
	SharedOut    decimal.Decimal
	SharedIn     decimal.Decimal
	NetCost      decimal.Decimal
	Outgoing     []ShareLine
	Incoming     []ShareLine
}
