package chart

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MrRicesun777/PriceOfEth/internal/model"
)

// ErrNotEnoughData is returned when the series is too short to chart.
var ErrNotEnoughData = errors.New("not enough data points to render chart")

var lineColor = drawing.ColorFromHex("1E88E5")

// Renderer draws a price series into a PNG artifact at a fixed path.
// Each render overwrites the previous artifact; exactly one chart exists
// at a time.
type Renderer struct {
	Path string
}

// NewRenderer creates a renderer writing to path.
func NewRenderer(path string) *Renderer {
	return &Renderer{Path: path}
}

// Render draws the series and returns the artifact path. A series shorter
// than 3 points returns ErrNotEnoughData without touching the artifact.
// Every failure, panics from the drawing backend included, comes back as an
// error; rendering never crashes the caller.
func (r *Renderer) Render(series model.PriceSeries, windowDays int) (path string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("chart render panic: %v", rec)
		}
	}()

	if len(series) < 3 {
		return "", ErrNotEnoughData
	}

	times := make([]time.Time, len(series))
	prices := make([]float64, len(series))
	for i, p := range series {
		times[i] = p.Time
		prices[i] = p.Price
	}

	maxPoint, _ := series.Max()
	minPoint, _ := series.Min()

	// Floor the y-axis at 99% of the minimum so the area fill bottoms out
	// just under the curve instead of at zero.
	yMin := minPoint.Price * 0.99
	yMax := maxPoint.Price * 1.01
	if yMax <= yMin {
		yMax = yMin + 1
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Ethereum price development (%d days)", windowDays),
		Width:  1400,
		Height: 700,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("02-01"),
		},
		YAxis: chart.YAxis{
			Name:  "Price (€)",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "ETH/EUR",
				XValues: times,
				YValues: prices,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 3,
					FillColor:   lineColor.WithAlpha(50),
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{
					XValue: chart.TimeToFloat64(maxPoint.Time),
					YValue: maxPoint.Price,
					Label:  fmt.Sprintf("High: €%.2f", maxPoint.Price),
				}},
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					FontColor:   chart.ColorGreen,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{
					XValue: chart.TimeToFloat64(minPoint.Time),
					YValue: minPoint.Price,
					Label:  fmt.Sprintf("Low: €%.2f", minPoint.Price),
				}},
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					FontColor:   chart.ColorRed,
				},
			},
		},
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}

	log.Printf("[INFO] chart rendered with %d data points: %s", len(series), r.Path)
	return r.Path, nil
}
