// Package input reads bounded, typed values from an operator.
// A read keeps reprompting until the entry parses and satisfies every
// constraint, so callers only ever see valid values or a terminal error.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pos-pricing/internal/errors"
)

// Prompter is what pricing strategies and the checkout flow need from
// an interactive operator.
type Prompter interface {
	// Decimal reads a decimal value satisfying opts
	Decimal(prompt string, opts ...Option) (decimal.Decimal, error)

	// Int reads an integer value satisfying opts
	Int(prompt string, opts ...Option) (int, error)

	// Println writes an informational line
	Println(format string, args ...interface{})
}

// Reader is a line-oriented Prompter
type Reader struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithMaxAttempts caps the entries accepted per read. Zero means unbounded.
func WithMaxAttempts(n int) ReaderOption {
	return func(r *Reader) {
		r.maxAttempts = n
	}
}

// NewReader creates a Reader over in, writing prompts and messages to out
func NewReader(in io.Reader, out io.Writer, opts ...ReaderOption) *Reader {
	r := &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Println writes an informational line
func (r *Reader) Println(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Entries beyond these bounds are treated as malformed. Comparing or
// printing a value rescales it, and 1e400000000 would need a
// 400-million-digit integer.
const (
	maxDecimalScale  = 28
	maxDecimalDigits = 38
)

var errDecimalRange = fmt.Errorf("decimal exceeds %d digits or scale %d", maxDecimalDigits, maxDecimalScale)

// Decimal reads a decimal value
func (r *Reader) Decimal(prompt string, opts ...Option) (decimal.Decimal, error) {
	return read[decimal.Decimal](r, prompt, "decimal", parseDecimal, opts)
}

func parseDecimal(s string) (decimal.Decimal, decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return d, d, err
	}
	exp := d.Exponent()
	if exp > maxDecimalScale || exp < -maxDecimalScale || d.NumDigits() > maxDecimalDigits {
		return decimal.Zero, decimal.Zero, errDecimalRange
	}
	return d, d, nil
}

// Int reads an integer value
func (r *Reader) Int(prompt string, opts ...Option) (int, error) {
	return read[int](r, prompt, "int", func(s string) (int, decimal.Decimal, error) {
		n, err := strconv.Atoi(s)
		return n, decimal.NewFromInt(int64(n)), err
	}, opts)
}

// parseFunc converts an entry into its typed value and the decimal used
// for bound checks.
type parseFunc[T any] func(string) (T, decimal.Decimal, error)

func read[T any](r *Reader, prompt, typeName string, parse parseFunc[T], opts []Option) (T, error) {
	var zero T

	c := newConstraints(opts)
	if err := c.validate(); err != nil {
		return zero, err
	}

	for attempt := 1; ; attempt++ {
		if r.maxAttempts > 0 && attempt > r.maxAttempts {
			return zero, errors.Input(fmt.Sprintf("no valid value after %d attempts", r.maxAttempts), nil).
				WithContext("prompt", prompt)
		}

		fmt.Fprint(r.out, prompt)
		line, err := r.readLine()
		if err != nil {
			return zero, errors.Input("input closed before a valid value was entered", err)
		}

		value, num, err := parse(strings.TrimSpace(line))
		if err != nil {
			r.Println("Input type must be %s.", typeName)
			continue
		}

		if msg := c.check(num); msg != "" {
			r.Println("%s", msg)
			continue
		}

		return value, nil
	}
}

// readLine returns the next entry, however long. A final entry with no
// trailing newline still counts; only an empty remainder at EOF closes
// the input.
func (r *Reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
