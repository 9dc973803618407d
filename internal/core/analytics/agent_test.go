package analytics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforce/sales-agent-api/internal/core/chart"
)

type failingReader struct{}

func (failingReader) FetchRevenueSeries() ([]Point, error) {
	return nil, errors.New("connection refused")
}

type wideReader struct{ n int }

func (r wideReader) FetchRevenueSeries() ([]Point, error) {
	series := make([]Point, r.n)
	for i := range series {
		series[i] = Point{Name: fmt.Sprintf("Rep %02d", i), Value: float64((i + 1) * 1000)}
	}
	return series, nil
}

func newTestAgent(reader RevenueReader) *Agent {
	return NewAgent(chart.NewRenderer(), reader, "")
}

func TestSummarize(t *testing.T) {
	t.Run("sample series statistics", func(t *testing.T) {
		total, average, top := Summarize(SampleRevenueSeries())

		assert.Equal(t, 259000.0, total)
		assert.InDelta(t, 259000.0/6, average, 0.001)
		assert.Equal(t, "Emily Davis", top.Name)
		assert.Equal(t, 61000.0, top.Value)
	})

	t.Run("empty series", func(t *testing.T) {
		total, average, top := Summarize(nil)
		assert.Zero(t, total)
		assert.Zero(t, average)
		assert.Empty(t, top.Name)
	})
}

func TestProcess_RevenueNarrative(t *testing.T) {
	a := newTestAgent(nil)

	res := a.Process("How is revenue looking this quarter?")
	require.NotNil(t, res)

	assert.Contains(t, res.Response, "Sales Performance Analysis")
	assert.Contains(t, res.Response, "Emily Davis leads with $61,000")
	assert.Contains(t, res.Response, "Total team revenue: $259,000")
	assert.Contains(t, res.Response, "6 salespersons analyzed")
	assert.Empty(t, res.Charts, "no chart keyword, no chart")
	assert.Len(t, res.Data, 6)
}

func TestProcess_TeamNarrative(t *testing.T) {
	a := newTestAgent(nil)

	res := a.Process("Give me a team overview")
	assert.Contains(t, res.Response, "Sales Team Overview")
}

func TestProcess_NarrativePriority(t *testing.T) {
	// A query matching both revenue and team keywords takes the revenue
	// shape.
	a := newTestAgent(nil)

	res := a.Process("team revenue overview")
	assert.Contains(t, res.Response, "Sales Performance Analysis")
}

func TestProcess_FallbackNarrative(t *testing.T) {
	a := newTestAgent(nil)

	res := a.Process("what can you do?")
	assert.Contains(t, res.Response, "Analytics Dashboard Response")
	assert.Contains(t, res.Response, `"what can you do?"`)
	assert.Contains(t, res.Response, "**Note:** This is running in local development mode with sample data.")
}

func TestProcess_ChartAttachment(t *testing.T) {
	a := newTestAgent(nil)

	t.Run("chart keyword attaches one chart", func(t *testing.T) {
		res := a.Process("show me a revenue chart")
		require.Len(t, res.Charts, 1)
		assert.True(t, strings.HasPrefix(res.Charts[0], "data:image/png;base64,"))
	})

	t.Run("no keyword means no chart", func(t *testing.T) {
		res := a.Process("revenue numbers please")
		assert.Empty(t, res.Charts)
	})
}

func TestProcess_ReaderFailureFallsBack(t *testing.T) {
	a := newTestAgent(failingReader{})

	res := a.Process("revenue analysis")
	// Sample series numbers, not an error.
	assert.Contains(t, res.Response, "Emily Davis leads with $61,000")
	assert.Len(t, res.Data, 6)
}

func TestProcess_DataCappedAtTen(t *testing.T) {
	a := newTestAgent(wideReader{n: 25})

	res := a.Process("revenue breakdown")
	assert.Len(t, res.Data, 10)
}
