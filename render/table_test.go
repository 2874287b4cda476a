package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/amortization-engine/render"
	"github.com/warp/amortization-engine/schedule"
)

func TestTable_RendersScheduleWithTotals(t *testing.T) {
	// GIVEN: A small zero-interest schedule starting November 2026
	// WHEN: Rendering it
	// THEN: Rows carry month labels that roll over the year boundary,
	//       the totals row closes the table

	eng, err := schedule.New(schedule.LoanTerms{
		Principal:  schedule.MustParseDecimal("300"),
		AnnualRate: schedule.MustParseDecimal("0"),
		Periods:    3,
	}, schedule.NewExtraRules())
	require.NoError(t, err)

	var out strings.Builder
	table := render.NewTable(&out, time.November, 2026)
	for {
		res, ok := eng.Next()
		if !ok {
			break
		}
		table.Append(res)
	}
	require.NoError(t, table.Flush(eng.Totals()))

	text := out.String()
	assert.Contains(t, text, "| Period | Date    | Payment | Principal | Interest | Balance |")
	assert.Contains(t, text, "2026-11")
	assert.Contains(t, text, "2026-12")
	assert.Contains(t, text, "2027-01")
	assert.Contains(t, text, "100.00")
	assert.Contains(t, text, "Totals")
	assert.Contains(t, text, "300.00")

	// Every line is bordered and equally wide.
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.NotEmpty(t, lines)
	width := len(lines[0])
	for i, line := range lines {
		assert.Len(t, line, width, "line %d", i)
		assert.True(t, line[0] == '+' || line[0] == '|', "line %d starts with border", i)
	}
}

func TestTable_TotalsRowOmitsDateAndBalance(t *testing.T) {
	var out strings.Builder
	table := render.NewTable(&out, time.January, 2026)
	table.Append(schedule.PeriodResult{
		Period:    1,
		Payment:   schedule.MustParseDecimal("536.82"),
		Principal: schedule.MustParseDecimal("120.15"),
		Interest:  schedule.MustParseDecimal("416.67"),
		Balance:   schedule.MustParseDecimal("99879.85"),
	})
	require.NoError(t, table.Flush(schedule.RunningTotals{
		Payment:   schedule.MustParseDecimal("536.82"),
		Principal: schedule.MustParseDecimal("120.15"),
		Interest:  schedule.MustParseDecimal("416.67"),
	}))

	lines := strings.Split(out.String(), "\n")
	var totalsLine string
	for _, line := range lines {
		if strings.Contains(line, "Totals") {
			totalsLine = line
		}
	}
	require.NotEmpty(t, totalsLine)
	assert.NotContains(t, totalsLine, "2026")
	assert.NotContains(t, totalsLine, "99879.85")
}
