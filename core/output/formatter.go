// Package output renders checkout receipts.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pos-pricing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is the plain two-line receipt
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatCLI, FormatJSON:
		return f, nil
	default:
		return "", errors.Config("unsupported output format: "+name, nil)
	}
}

// Receipt is the outcome of one checkout
type Receipt struct {
	SessionID string          `json:"session_id"`
	Strategy  string          `json:"strategy"`
	Subtotal  decimal.Decimal `json:"original"`
	Charged   decimal.Decimal `json:"charged"`
}

// Formatter writes receipts to a destination
type Formatter interface {
	Format(w io.Writer, r *Receipt) error
}

// NewFormatter returns the formatter for f
func NewFormatter(f Format) Formatter {
	if f == FormatJSON {
		return jsonFormatter{}
	}
	return cliFormatter{}
}

type cliFormatter struct{}

func (cliFormatter) Format(w io.Writer, r *Receipt) error {
	_, err := fmt.Fprintf(w, "Original price: %s\nCharged: %s\n", r.Subtotal.String(), r.Charged.String())
	return err
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, r *Receipt) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
