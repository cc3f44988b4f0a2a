// Package table renders search results as a column-aligned text table.
package table

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/igormcsouza/omni-pkg/pkg/core"
)

// Headers are the fixed column titles
var Headers = []string{"Name", "Version", "Size", "Source"}

// separator goes between columns
const separator = "  "

// Widths returns the cell width of every column: the widest of the header
// and all values in that column.
func Widths(pkgs []core.Package) []int {
	widths := make([]int, len(Headers))
	for i, h := range Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, p := range pkgs {
		for i, field := range p.Fields() {
			if w := runewidth.StringWidth(field); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Format returns the table as a string: header row, dash row, one row per package
func Format(pkgs []core.Package) string {
	widths := Widths(pkgs)

	var b strings.Builder
	writeRow(&b, Headers, widths)

	total := len(separator) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')

	for _, p := range pkgs {
		writeRow(&b, p.Fields(), widths)
	}
	return b.String()
}

// Render writes the table to w
func Render(w io.Writer, pkgs []core.Package) error {
	_, err := io.WriteString(w, Format(pkgs))
	return err
}

func writeRow(b *strings.Builder, fields []string, widths []int) {
	for i, field := range fields {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(runewidth.FillRight(field, widths[i]))
	}
	b.WriteByte('\n')
}
