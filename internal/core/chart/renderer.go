package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/fieldforce/sales-agent-api/internal/utils"
)

// Kind selects the chart layout.
type Kind string

const (
	KindBar Kind = "bar"
	KindPie Kind = "pie"
)

// ErrInsufficientData is returned when a series is too short to chart.
var ErrInsufficientData = errors.New("insufficient data for chart")

// RenderError wraps an internal drawing failure. Callers treat it as a
// soft failure: log it and omit the chart, never surface it to clients.
type RenderError struct {
	Kind Kind
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s chart: %v", e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Point is one labeled value of a chart series.
type Point struct {
	Label string
	Value float64
}

var palette = []drawing.Color{
	drawing.ColorFromHex("FF6B6B"),
	drawing.ColorFromHex("4ECDC4"),
	drawing.ColorFromHex("45B7D1"),
	drawing.ColorFromHex("96CEB4"),
	drawing.ColorFromHex("FFEAA7"),
	drawing.ColorFromHex("DDA0DD"),
}

// Renderer draws labeled series into PNG data URIs. It keeps no state
// across calls; each render owns its buffer for the call's scope.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws one chart for the series and returns it as a
// data:image/png;base64 string. Series shorter than two entries yield
// ErrInsufficientData before any drawing happens.
func (r *Renderer) Render(series []Point, kind Kind, title string) (string, error) {
	if len(series) < 2 {
		return "", ErrInsufficientData
	}

	buf := new(bytes.Buffer)
	var err error
	switch kind {
	case KindPie:
		err = renderPie(buf, series, title)
	default:
		err = renderBar(buf, series, title)
	}
	if err != nil {
		return "", &RenderError{Kind: kind, Err: err}
	}

	return encodeDataURI(buf.Bytes()), nil
}

// Dashboard renders the four standard dashboard charts. The result
// always carries all four keys; a chart that fails to render maps to an
// empty string so one bad chart never sinks the whole dashboard.
func (r *Renderer) Dashboard() map[string]string {
	charts := map[string]string{
		"revenue_chart":  "",
		"meetings_chart": "",
		"leads_chart":    "",
		"regional_chart": "",
	}

	specs := []struct {
		key    string
		series []Point
		kind   Kind
		title  string
	}{
		{"revenue_chart", revenueBySalesperson(), KindBar, "Revenue by Salesperson"},
		{"meetings_chart", meetingOutcomes(), KindPie, "Meeting Outcomes Distribution"},
		{"leads_chart", leadStatuses(), KindBar, "Lead Status Distribution"},
		{"regional_chart", revenueByRegion(), KindBar, "Revenue by Region"},
	}

	for _, spec := range specs {
		image, err := r.Render(spec.series, spec.kind, spec.title)
		if err != nil {
			utils.LogWarn("dashboard chart failed", map[string]interface{}{
				"chart": spec.key,
				"error": err.Error(),
			})
			continue
		}
		charts[spec.key] = image
	}

	return charts
}

func renderBar(buf *bytes.Buffer, series []Point, title string) error {
	bars := make([]chart.Value, len(series))
	for i, p := range series {
		color := palette[i%len(palette)]
		bars[i] = chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		}
	}

	bc := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Width:    1200,
		Height:   800,
		DPI:      300,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 50},
		},
		XAxis: chart.Style{
			FontSize:            10,
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontSize: 10},
			ValueFormatter: currencyFormatter,
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 76},
				StrokeWidth: 1.0,
			},
		},
		Bars: bars,
	}

	return bc.Render(chart.PNG, buf)
}

func renderPie(buf *bytes.Buffer, series []Point, title string) error {
	values := make([]chart.Value, 0, len(series))
	for i, p := range series {
		if p.Value <= 0 {
			// Zero-count slices carry no angle; skip them like the
			// upstream layout does.
			continue
		}
		color := palette[i%len(palette)]
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		})
	}

	pc := chart.PieChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Width:  1000,
		Height: 800,
		DPI:    300,
		Values: values,
	}

	return pc.Render(chart.PNG, buf)
}

func encodeDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func currencyFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return FormatCurrency(f)
}

// FormatCurrency renders an amount as $x,xxx with no decimals.
func FormatCurrency(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64)

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}
