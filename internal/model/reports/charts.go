package reports

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"max.ks1230/expense-dashboard/internal/entity/currency"
	"max.ks1230/expense-dashboard/internal/model/analytics"
)

const (
	chartWidth  = 1000
	chartHeight = 500
)

// renderTrend draws the day-by-day spending line. go-chart needs at least
// two points for a time series; with fewer the caller falls back to text.
func renderTrend(points []analytics.TrendPoint, curr string) ([]byte, error) {
	if len(points) < 2 {
		return nil, nil
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	ticks := make([]chart.Tick, 0, len(points))
	for i, p := range points {
		xValues[i] = float64(i)
		yValues[i] = p.Amount
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Label})
	}

	graph := chart.Chart{
		Title:  "Expense trend over time",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f%s", v.(float64), currency.Symbol(curr))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Amount",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderBreakdownPie draws spending by category.
func renderBreakdownPie(groups []analytics.GroupAmount, curr string) ([]byte, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		values = append(values, chart.Value{
			Value: g.Amount,
			Label: fmt.Sprintf("%s: %.2f%s", g.Name, g.Amount, currency.Symbol(curr)),
		})
	}

	graph := chart.PieChart{
		Title:  "Spending by category",
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderBreakdownBars draws spending by payment method.
func renderBreakdownBars(groups []analytics.GroupAmount, curr string) ([]byte, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(groups))
	for _, g := range groups {
		bars = append(bars, chart.Value{Value: g.Amount, Label: g.Name})
	}

	graph := chart.BarChart{
		Title:  "Spending by payment method",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50},
		},
		BarWidth: 80,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f%s", v.(float64), currency.Symbol(curr))
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
