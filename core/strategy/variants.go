package strategy

import (
	"github.com/shopspring/decimal"

	"pos-pricing/core/input"
	"pos-pricing/internal/errors"
)

// FlatCharge charges the subtotal unchanged
type FlatCharge struct {
	base
}

// NewFlatCharge creates a flat charge for amount
func NewFlatCharge(amount decimal.Decimal) *FlatCharge {
	return &FlatCharge{base: base{input: amount}}
}

// Name returns "Flat charge"
func (s *FlatCharge) Name() string { return NameFlatCharge }

// Configure is a no-op; a flat charge has no parameters
func (s *FlatCharge) Configure(input.Prompter) error { return nil }

// Compute charges the subtotal as is
func (s *FlatCharge) Compute() (decimal.Decimal, error) {
	return s.record(s.input), nil
}

// ThresholdRebate takes Rebate off once for every whole Threshold the
// subtotal contains, e.g. "100 off every 1000".
type ThresholdRebate struct {
	base
	Threshold decimal.Decimal
	Rebate    decimal.Decimal
}

// unreachableThreshold keeps an unconfigured rebate from ever applying
var unreachableThreshold = decimal.New(1, 18)

// NewThresholdRebate creates a threshold rebate for amount
func NewThresholdRebate(amount decimal.Decimal) *ThresholdRebate {
	return &ThresholdRebate{
		base:      base{input: amount},
		Threshold: unreachableThreshold,
		Rebate:    decimal.Zero,
	}
}

// Name returns "Threshold rebate"
func (s *ThresholdRebate) Name() string { return NameThresholdRebate }

// Configure reads the threshold and then a rebate no larger than it
func (s *ThresholdRebate) Configure(p input.Prompter) error {
	p.Println("Enter rebate rule:")

	threshold, err := p.Decimal("For every: ", input.Min(decimal.Zero), input.Positive())
	if err != nil {
		return err
	}
	rebate, err := p.Decimal("Take off: ", input.Min(decimal.Zero), input.Max(threshold))
	if err != nil {
		return err
	}

	s.Threshold = threshold
	s.Rebate = rebate
	return nil
}

// Compute takes Rebate off per whole Threshold. A non-positive
// threshold is a PRICING_ERROR.
func (s *ThresholdRebate) Compute() (decimal.Decimal, error) {
	if !s.Threshold.IsPositive() {
		return decimal.Zero, errors.Pricing("threshold must be positive").
			WithContext("threshold", s.Threshold.String())
	}

	// whole multiples only; Div would round at DivisionPrecision
	count, _ := s.input.QuoRem(s.Threshold, 0)
	if count.IsNegative() {
		count = decimal.Zero
	}
	return s.record(s.input.Sub(count.Mul(s.Rebate))), nil
}

// PercentageDiscount charges Factor times the subtotal
type PercentageDiscount struct {
	base
	Factor decimal.Decimal
}

// NewPercentageDiscount creates an undiscounted percentage discount for amount
func NewPercentageDiscount(amount decimal.Decimal) *PercentageDiscount {
	return &PercentageDiscount{
		base:   base{input: amount},
		Factor: decimal.NewFromInt(1),
	}
}

// Name returns "Percentage discount"
func (s *PercentageDiscount) Name() string { return NamePercentageDiscount }

// Configure reads a factor in [0, 1]
func (s *PercentageDiscount) Configure(p input.Prompter) error {
	factor, err := p.Decimal("Discount factor: ", input.Min(decimal.Zero), input.Max(decimal.NewFromInt(1)))
	if err != nil {
		return err
	}
	s.Factor = factor
	return nil
}

// Compute charges subtotal × Factor
func (s *PercentageDiscount) Compute() (decimal.Decimal, error) {
	return s.record(s.input.Mul(s.Factor)), nil
}

// TaxAddition adds Rate times the subtotal
type TaxAddition struct {
	base
	Rate decimal.Decimal
}

// NewTaxAddition creates a zero-rate tax addition for amount
func NewTaxAddition(amount decimal.Decimal) *TaxAddition {
	return &TaxAddition{
		base: base{input: amount},
		Rate: decimal.Zero,
	}
}

// Name returns "Tax addition"
func (s *TaxAddition) Name() string { return NameTaxAddition }

// Configure reads a non-negative tax rate
func (s *TaxAddition) Configure(p input.Prompter) error {
	rate, err := p.Decimal("Tax rate: ", input.Min(decimal.Zero))
	if err != nil {
		return err
	}
	s.Rate = rate
	return nil
}

// Compute charges subtotal × (1 + Rate)
func (s *TaxAddition) Compute() (decimal.Decimal, error) {
	return s.record(s.input.Mul(decimal.NewFromInt(1).Add(s.Rate))), nil
}
