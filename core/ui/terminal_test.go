package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMenu(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Menu([]string{"Flat charge", "Tax addition"})
	require.Equal(t, "1: Flat charge\n2: Tax addition\n", buf.String())
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("#", "Strategy")
	table.AddRow("1", "Flat charge")
	table.AddRow("2", "Percentage discount", "ignored")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "# │ Strategy", lines[0])
	require.Equal(t, "2 │ Percentage discount", lines[3])
}

func TestColorToggle(t *testing.T) {
	var plain, colored bytes.Buffer

	NewWriter(&plain, true).Success("done")
	NewWriter(&colored, false).Success("done")

	require.Equal(t, "✓ done\n", plain.String())
	require.Contains(t, colored.String(), Green)
}

func TestMessageMarkers(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{"header", func(w *Writer) { w.Header("Pricing strategies") }, "━━━ Pricing strategies ━━━\n"},
		{"warning", func(w *Writer) { w.Warning("input closed") }, "⚠ input closed\n"},
		{"error", func(w *Writer) { w.Error("checkout failed: %s", "boom") }, "✗ checkout failed: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewWriter(&buf, true))
			require.Equal(t, tt.want, buf.String())
		})
	}
}
