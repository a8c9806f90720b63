package input

import (
	"strings"

	"github.com/shopspring/decimal"

	"pos-pricing/internal/errors"
)

// Option constrains the values a read accepts
type Option func(*constraints)

type constraints struct {
	min      *decimal.Decimal
	max      *decimal.Decimal
	positive bool
	oneOf    []decimal.Decimal
	between  *[2]decimal.Decimal
}

// Min rejects values below d
func Min(d decimal.Decimal) Option {
	return func(c *constraints) {
		c.min = &d
	}
}

// Max rejects values above d
func Max(d decimal.Decimal) Option {
	return func(c *constraints) {
		c.max = &d
	}
}

// Positive rejects zero and negative values
func Positive() Option {
	return func(c *constraints) {
		c.positive = true
	}
}

// OneOf accepts only the listed values
func OneOf(values ...decimal.Decimal) Option {
	return func(c *constraints) {
		c.oneOf = append(c.oneOf, values...)
	}
}

// Between accepts values in [lo, hi]. Unlike Min and Max it reports
// both ends in a single message.
func Between(lo, hi decimal.Decimal) Option {
	return func(c *constraints) {
		c.between = &[2]decimal.Decimal{lo, hi}
	}
}

func newConstraints(opts []Option) *constraints {
	c := &constraints{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *constraints) validate() error {
	if c.min != nil && c.max != nil && c.max.LessThan(*c.min) {
		return errors.Input("min must be less than or equal to max", nil).
			WithContext("min", c.min.String()).
			WithContext("max", c.max.String())
	}
	if c.between != nil && c.between[1].LessThan(c.between[0]) {
		return errors.Input("range start must not exceed range end", nil)
	}
	return nil
}

// check returns the message for the first violated constraint, or "".
func (c *constraints) check(v decimal.Decimal) string {
	switch {
	case c.max != nil && v.GreaterThan(*c.max):
		return "Input must be less than or equal to " + c.max.String() + "."
	case c.min != nil && v.LessThan(*c.min):
		return "Input must be greater than or equal to " + c.min.String() + "."
	case c.positive && !v.IsPositive():
		return "Input must be greater than 0."
	case c.between != nil && (v.LessThan(c.between[0]) || v.GreaterThan(c.between[1])):
		return "Input must be between " + c.between[0].String() + " and " + c.between[1].String() + "."
	case len(c.oneOf) > 0 && !contains(c.oneOf, v):
		return "Input must be " + joinChoices(c.oneOf) + "."
	}
	return ""
}

func contains(values []decimal.Decimal, v decimal.Decimal) bool {
	for _, candidate := range values {
		if candidate.Equal(v) {
			return true
		}
	}
	return false
}

// joinChoices renders "a", "a or b", "a, b or c".
func joinChoices(values []decimal.Decimal) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
