package report

import (
	"strings"
	"unicode/utf8"
)

// Section header labels used in the grid output.
const (
	IngredientsHeader = "--- INGREDIENTS ---"
	TechniquesHeader  = "--- TECHNIQUES ---"
)

// FormatGrid renders the report as a bordered text grid with an "Element"
// column followed by one column per cocktail.
func FormatGrid(r *Report) string {
	headers := append([]string{"Element"}, r.Columns...)

	var rows [][]string
	rows = append(rows, sectionRow(IngredientsHeader, len(r.Columns)))
	for _, row := range r.Ingredients {
		rows = append(rows, append([]string{row.Element}, row.Cells...))
	}
	rows = append(rows, sectionRow(TechniquesHeader, len(r.Columns)))
	for _, row := range r.Techniques {
		rows = append(rows, append([]string{row.Element}, row.Cells...))
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	writeRule(&sb, widths, '-')
	writeCells(&sb, headers, widths)
	writeRule(&sb, widths, '=')
	for _, row := range rows {
		writeCells(&sb, row, widths)
		writeRule(&sb, widths, '-')
	}
	return sb.String()
}

func sectionRow(label string, columns int) []string {
	row := make([]string, columns+1)
	row[0] = label
	return row
}

func writeRule(sb *strings.Builder, widths []int, fill rune) {
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(fill), w+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
}

func writeCells(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteByte('|')
	for i, w := range widths {
		sb.WriteByte(' ')
		sb.WriteString(padRight(cells[i], w))
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
