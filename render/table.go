/*
Package render formats amortization schedules as bordered text tables.

PURPOSE:
  The formatting collaborator of the schedule engine. Consumes
  PeriodResult values and renders them with columns
  period/date/payment/principal/interest/balance plus a totals row:

    +--------+---------+---------+-----------+----------+-----------+
    | Period | Date    | Payment | Principal | Interest | Balance   |
    +--------+---------+---------+-----------+----------+-----------+
    |      1 | 2026-01 |  536.82 |    120.15 |   416.67 |  99879.85 |
    ...
    +--------+---------+---------+-----------+----------+-----------+
    | Totals |         | ....... | ......... | ........ |           |
    +--------+---------+---------+-----------+----------+-----------+

DATE LABELING:
  The date column labels period P with the start month advanced P-1
  months, formatted as "2006-01". The engine knows nothing about dates;
  labeling lives entirely here.

USAGE:
  table := render.NewTable(os.Stdout, time.January, 2026)
  for {
      res, ok := eng.Next()
      if !ok { break }
      table.Append(res)
  }
  table.Flush(eng.Totals())

SEE ALSO:
  - schedule/types.go: PeriodResult, RunningTotals
  - cmd/amortize: CLI front-end driving this renderer
*/
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/warp/amortization-engine/schedule"
)

// dateLayout is the format of the date column.
const dateLayout = "2006-01"

// headers in column order.
var headers = [6]string{"Period", "Date", "Payment", "Principal", "Interest", "Balance"}

// Table accumulates schedule rows and renders them on Flush.
type Table struct {
	w     io.Writer
	start time.Time
	rows  [][6]string
}

// NewTable creates a table whose date column starts at the given month
// and year.
func NewTable(w io.Writer, month time.Month, year int) *Table {
	return &Table{
		w:     w,
		start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Append adds one period to the table.
func (t *Table) Append(res schedule.PeriodResult) {
	t.rows = append(t.rows, [6]string{
		strconv.Itoa(res.Period),
		t.dateLabel(res.Period),
		res.Payment.StringFixed(2),
		res.Principal.StringFixed(2),
		res.Interest.StringFixed(2),
		res.Balance.StringFixed(2),
	})
}

// Flush writes the bordered table, including the totals row.
func (t *Table) Flush(totals schedule.RunningTotals) error {
	totalsRow := [6]string{
		"Totals",
		"",
		totals.Payment.StringFixed(2),
		totals.Principal.StringFixed(2),
		totals.Interest.StringFixed(2),
		"",
	}

	widths := t.columnWidths(totalsRow)

	var b strings.Builder
	border := borderLine(widths)

	b.WriteString(border)
	writeRow(&b, widths, headers, false)
	b.WriteString(border)
	for _, row := range t.rows {
		writeRow(&b, widths, row, true)
	}
	b.WriteString(border)
	writeRow(&b, widths, totalsRow, true)
	b.WriteString(border)

	_, err := io.WriteString(t.w, b.String())
	return err
}

// dateLabel returns the date column value for a 1-based period index.
func (t *Table) dateLabel(period int) string {
	return t.start.AddDate(0, period-1, 0).Format(dateLayout)
}

// columnWidths sizes each column to its widest cell.
func (t *Table) columnWidths(totalsRow [6]string) [6]int {
	var widths [6]int
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range append(t.rows, totalsRow) {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// borderLine builds "+-----+-----+...+\n" for the given widths.
func borderLine(widths [6]int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
	return b.String()
}

// writeRow renders one row. Numeric rows are right-aligned, the header
// row left-aligned.
func writeRow(b *strings.Builder, widths [6]int, row [6]string, rightAlign bool) {
	for i, cell := range row {
		if rightAlign {
			fmt.Fprintf(b, "| %*s ", widths[i], cell)
		} else {
			fmt.Fprintf(b, "| %-*s ", widths[i], cell)
		}
	}
	b.WriteString("|\n")
}
