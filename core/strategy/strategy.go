// Package strategy - Pricing strategies applied to a checkout subtotal.
// Each strategy is configured once from the operator and then computes
// the amount to charge.
package strategy

import (
	"github.com/shopspring/decimal"

	"pos-pricing/core/input"
)

// Strategy is one pricing policy bound to a subtotal
type Strategy interface {
	// Name returns the fixed display label
	Name() string

	// Configure prompts for and stores the strategy's parameters.
	// Call it at most once, before Compute.
	Configure(p input.Prompter) error

	// Compute applies the policy to the subtotal, records the result
	// and returns it
	Compute() (decimal.Decimal, error)

	// Input returns the subtotal the strategy was created with
	Input() decimal.Decimal

	// Final returns the last computed amount; ok is false before Compute succeeds
	Final() (amount decimal.Decimal, ok bool)
}

// Display labels
const (
	NameFlatCharge         = "Flat charge"
	NameThresholdRebate    = "Threshold rebate"
	NamePercentageDiscount = "Percentage discount"
	NameTaxAddition        = "Tax addition"
)

// base carries the state every variant shares
type base struct {
	input decimal.Decimal
	final *decimal.Decimal
}

func (b *base) Input() decimal.Decimal {
	return b.input
}

func (b *base) Final() (decimal.Decimal, bool) {
	if b.final == nil {
		return decimal.Zero, false
	}
	return *b.final, true
}

func (b *base) record(amount decimal.Decimal) decimal.Decimal {
	b.final = &amount
	return amount
}

// Defaults returns one instance of every strategy for amount, in menu order
func Defaults(amount decimal.Decimal) []Strategy {
	return []Strategy{
		NewFlatCharge(amount),
		NewThresholdRebate(amount),
		NewPercentageDiscount(amount),
		NewTaxAddition(amount),
	}
}
