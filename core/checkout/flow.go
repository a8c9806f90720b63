// Package checkout runs one interactive point-of-sale session:
// subtotal, strategy menu, configuration and the charged amount.
package checkout

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pos-pricing/core/input"
	"pos-pricing/core/output"
	"pos-pricing/core/strategy"
	"pos-pricing/core/ui"
)

// Flow collects a subtotal and prices it with the operator's chosen strategy
type Flow struct {
	prompter input.Prompter
	w        *ui.Writer
	logger   *zap.Logger

	// newStrategies builds the menu for a subtotal
	newStrategies func(decimal.Decimal) []strategy.Strategy
}

// NewFlow creates a checkout flow. A nil logger discards logs.
func NewFlow(p input.Prompter, w *ui.Writer, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		prompter:      p,
		w:             w,
		logger:        logger,
		newStrategies: strategy.Defaults,
	}
}

// Run executes one checkout and returns its receipt
func (f *Flow) Run() (*output.Receipt, error) {
	sessionID := uuid.New().String()
	log := f.logger.With(zap.String("session", sessionID))

	price, err := f.prompter.Decimal("Unit price: ", input.Min(decimal.Zero))
	if err != nil {
		return nil, err
	}
	quantity, err := f.prompter.Int("Quantity: ", input.Min(decimal.Zero))
	if err != nil {
		return nil, err
	}

	subtotal := Subtotal(price, quantity)
	log.Debug("subtotal computed",
		zap.Stringer("price", price),
		zap.Int("quantity", quantity),
		zap.Stringer("subtotal", subtotal))

	registry := strategy.NewRegistry()
	for _, s := range f.newStrategies(subtotal) {
		registry.Register(s)
	}

	f.w.Header("Pricing strategies")
	f.w.Menu(registry.Names())
	choice, err := f.prompter.Int(
		fmt.Sprintf("Select pricing strategy (1~%d): ", registry.Len()),
		input.Min(decimal.NewFromInt(1)),
		input.Max(decimal.NewFromInt(int64(registry.Len()))),
	)
	if err != nil {
		return nil, err
	}

	selected, err := registry.At(choice)
	if err != nil {
		return nil, err
	}
	log.Debug("strategy selected", zap.String("strategy", selected.Name()))

	if err := selected.Configure(f.prompter); err != nil {
		return nil, err
	}
	charged, err := selected.Compute()
	if err != nil {
		log.Warn("pricing failed", zap.String("strategy", selected.Name()), zap.Error(err))
		return nil, err
	}
	log.Debug("checkout priced", zap.Stringer("charged", charged))

	return &output.Receipt{
		SessionID: sessionID,
		Strategy:  selected.Name(),
		Subtotal:  subtotal,
		Charged:   charged,
	}, nil
}

// Subtotal returns price times quantity without rounding
func Subtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
