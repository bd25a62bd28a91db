// Package chart draws the BMI history line shown next to the form.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"lg/bmi-tracker/internal/store"
)

// ErrNotEnoughData is returned when fewer than two records exist; a single
// point is not a trend.
var ErrNotEnoughData = errors.New("at least two records are needed for a trend")

const (
	Title       = "Your BMI Progress Over Time"
	ContentType = "image/svg+xml"
)

// Point is one plotted record.
type Point struct {
	Time time.Time `json:"time"`
	BMI  float64   `json:"bmi"`
}

// Trend turns the store's newest-first records into chronological points.
func Trend(records []store.Record) []Point {
	points := make([]Point, len(records))
	for i, r := range records {
		points[len(records)-1-i] = Point{Time: r.Timestamp, BMI: r.BMI}
	}
	return points
}

// RenderSVG writes the trend of records as an SVG line chart.
func RenderSVG(w io.Writer, records []store.Record) error {
	if len(records) < 2 {
		return ErrNotEnoughData
	}

	points := Trend(records)
	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.Time, p.BMI
	}

	xMin, xMax := gochart.TimeToFloat64(xs[0]), gochart.TimeToFloat64(xs[len(xs)-1])
	if xMax <= xMin {
		// Same-instant records; widen by a minute each side.
		xMin -= float64(time.Minute)
		xMax += float64(time.Minute)
	}
	yMin, yMax := padRange(ys)

	graph := gochart.Chart{
		Title:  Title,
		Width:  640,
		Height: 360,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeMinuteValueFormatter,
			Range:          &gochart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: gochart.YAxis{
			Name:  "BMI",
			Range: &gochart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    "BMI",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
					DotColor:    drawing.ColorBlue,
					DotWidth:    3,
				},
			},
		},
	}

	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("render trend chart: %w", err)
	}
	return nil
}

// padRange returns a y-axis range around values with one BMI unit of
// headroom, so a flat series still has a non-zero range.
func padRange(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo - 1, hi + 1
}
