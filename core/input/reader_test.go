package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pos-pricing/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newScripted(lines string, opts ...ReaderOption) (*Reader, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewReader(strings.NewReader(lines), out, opts...), out
}

func TestDecimalRepromptsOnNonNumeric(t *testing.T) {
	r, out := newScripted("abc\n12.50\n")

	v, err := r.Decimal("Price: ", Min(decimal.Zero))
	require.NoError(t, err)
	require.True(t, v.Equal(dec("12.5")))
	require.Contains(t, out.String(), "Input type must be decimal.")
	require.Equal(t, 2, strings.Count(out.String(), "Price: "))
}

func TestIntRejectsFractions(t *testing.T) {
	r, out := newScripted("2.5\n  3 \n")

	v, err := r.Int("Quantity: ", Min(decimal.Zero))
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Contains(t, out.String(), "Input type must be int.")
}

func TestBoundMessages(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		opts    []Option
		want    string
		message string
	}{
		{
			name:    "above max",
			script:  "7\n5\n",
			opts:    []Option{Min(decimal.Zero), Max(dec("5"))},
			want:    "5",
			message: "Input must be less than or equal to 5.",
		},
		{
			name:    "below min",
			script:  "-1\n0\n",
			opts:    []Option{Min(decimal.Zero)},
			want:    "0",
			message: "Input must be greater than or equal to 0.",
		},
		{
			name:    "fractional max",
			script:  "1.01\n0.9\n",
			opts:    []Option{Min(decimal.Zero), Max(dec("1"))},
			want:    "0.9",
			message: "Input must be less than or equal to 1.",
		},
		{
			name:    "zero is not positive",
			script:  "0\n1000\n",
			opts:    []Option{Min(decimal.Zero), Positive()},
			want:    "1000",
			message: "Input must be greater than 0.",
		},
		{
			name:    "outside range",
			script:  "9\n3\n",
			opts:    []Option{Between(dec("1"), dec("4"))},
			want:    "3",
			message: "Input must be between 1 and 4.",
		},
		{
			name:    "not in set",
			script:  "4\n2\n",
			opts:    []Option{OneOf(dec("1"), dec("2"), dec("3"))},
			want:    "2",
			message: "Input must be 1, 2 or 3.",
		},
		{
			name:    "single allowed value",
			script:  "2\n1\n",
			opts:    []Option{OneOf(dec("1"))},
			want:    "1",
			message: "Input must be 1.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newScripted(tt.script)

			v, err := r.Decimal("> ", tt.opts...)
			require.NoError(t, err)
			require.True(t, v.Equal(dec(tt.want)), "got %s", v)
			require.Contains(t, out.String(), tt.message)
		})
	}
}

func TestValidEntryIsNotReprompted(t *testing.T) {
	r, out := newScripted("3\n")

	v, err := r.Int("Pick: ", Min(dec("1")), Max(dec("4")))
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, "Pick: ", out.String())
}

func TestMinGreaterThanMaxIsRejected(t *testing.T) {
	r, out := newScripted("1\n")

	_, err := r.Decimal("> ", Min(dec("5")), Max(dec("1")))
	require.Error(t, err)
	require.True(t, errors.IsType(err, errors.TypeInput))
	require.Empty(t, out.String(), "nothing should be prompted")
}

func TestClosedInput(t *testing.T) {
	r, _ := newScripted("abc\n")

	_, err := r.Decimal("> ")
	require.Error(t, err)
	require.True(t, errors.IsType(err, errors.TypeInput))
	require.ErrorIs(t, err, io.EOF)
}

func TestMaxAttempts(t *testing.T) {
	r, out := newScripted("x\ny\n3\n", WithMaxAttempts(2))

	_, err := r.Int("> ")
	require.Error(t, err)
	require.True(t, errors.IsType(err, errors.TypeInput))
	require.Equal(t, 2, strings.Count(out.String(), "Input type must be int."))
}

func TestMaxAttemptsDoesNotAffectValidSequences(t *testing.T) {
	r, _ := newScripted("x\n3\n", WithMaxAttempts(2))

	v, err := r.Int("> ")
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestPrintln(t *testing.T) {
	r, out := newScripted("")

	r.Println("Enter %s:", "rule")
	require.Equal(t, "Enter rule:\n", out.String())
}

func TestOverlongEntryIsReprompted(t *testing.T) {
	r, out := newScripted(strings.Repeat("9", 70000) + "\n5\n")

	v, err := r.Int("Quantity: ", Min(decimal.Zero))
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Contains(t, out.String(), "Input type must be int.")
	require.Equal(t, 2, strings.Count(out.String(), "Quantity: "))
}

func TestFinalEntryWithoutNewline(t *testing.T) {
	r, _ := newScripted("7")

	v, err := r.Int("Quantity: ")
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, err = r.Int("Quantity: ")
	require.ErrorIs(t, err, io.EOF)
}

func TestDecimalRejectsOutOfRangeEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"huge exponent", "1e400000000"},
		{"tiny exponent", "1e-400000000"},
		{"too many digits", strings.Repeat("9", 70000)},
		{"scale beyond bound", "0." + strings.Repeat("0", 28) + "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newScripted(tt.entry + "\n5\n")

			v, err := r.Decimal("Price: ", Min(decimal.Zero))
			require.NoError(t, err)
			require.True(t, v.Equal(dec("5")))
			require.Contains(t, out.String(), "Input type must be decimal.")
		})
	}
}

func TestDecimalAcceptsValuesAtTheBounds(t *testing.T) {
	r, _ := newScripted("1e28\n")

	v, err := r.Decimal("Price: ", Min(decimal.Zero))
	require.NoError(t, err)
	require.True(t, v.Equal(decimal.New(1, 28)))
}
