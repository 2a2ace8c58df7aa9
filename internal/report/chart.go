package report

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/MrJamesThe3rd/moneymate/internal/transaction"
)

var ErrNoData = errors.New("no data to chart")

// RenderChart draws kind's category breakdown as a PNG pie chart.
func RenderChart(r *Report, kind transaction.Kind) ([]byte, error) {
	shares := r.Breakdown(kind)
	if len(shares) == 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(shares))
	for _, s := range shares {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%s%%)", s.Category, FormatAmount(s.Amount), s.Percent.StringFixed(1)),
			Value: s.Amount.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%s by category, %s", kindTitle(kind), r.period.Title()),
		Width:  1000,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering %s chart: %w", kind, err)
	}

	return buf.Bytes(), nil
}

func kindTitle(kind transaction.Kind) string {
	if kind == transaction.KindIncome {
		return "Income"
	}

	return "Expenses"
}
