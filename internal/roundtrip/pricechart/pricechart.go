package pricechart

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

// Series is one line on the comparison chart: the best round-trip total per
// outbound day for one route.
type Series struct {
	Label  string
	Points []entity.SeriesPoint
}

var ErrNoData = errors.New("no chart data")

// RenderPNG draws a price-vs-date line chart, one series per route.
func RenderPNG(series []Series, currency string) ([]byte, error) {
	chartSeries := make([]chart.Series, 0, len(series))
	var xMin, xMax float64
	points := 0

	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, point := range s.Points {
			x := chart.TimeToFloat64(point.Day)
			if points == 0 || x < xMin {
				xMin = x
			}
			if points == 0 || x > xMax {
				xMax = x
			}
			points++
			xs = append(xs, x)
			ys = append(ys, point.Total)
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
		})
	}

	if points == 0 {
		return nil, ErrNoData
	}

	xAxis := chart.XAxis{
		Name:           "Outbound date",
		ValueFormatter: chart.TimeDateValueFormatter,
	}
	// A degenerate x-range (single outbound day) cannot be auto-scaled.
	if xMin == xMax {
		halfDay := float64(12 * 60 * 60 * 1e9)
		xAxis.Range = &chart.ContinuousRange{Min: xMin - halfDay, Max: xMax + halfDay}
	}

	graph := chart.Chart{
		Title:  "Best round-trip totals per outbound day",
		Width:  1024,
		Height: 576,
		XAxis:  xAxis,
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("Total (%s)", currency),
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
