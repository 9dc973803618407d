package analytics

import (
	"fmt"
	"strings"

	"github.com/fieldforce/sales-agent-api/internal/core/chart"
	"github.com/fieldforce/sales-agent-api/internal/utils"
)

// chartKeywords flags queries that should carry a rendered chart.
var chartKeywords = []string{
	"chart", "graph", "plot", "visual", "show", "display", "bar", "pie", "line",
}

var revenueKeywords = []string{"revenue", "sales", "performance"}

var teamKeywords = []string{"team", "overview"}

// Agent answers analytics-flavored queries with exact summary
// statistics over a revenue series, optionally attaching one bar chart.
type Agent struct {
	renderer *chart.Renderer
	revenue  RevenueReader
	llm      *narrator
}

// NewAgent builds the advanced analytics agent. revenue may be nil, in
// which case the static sample series is used. An empty apiKey disables
// the LLM narrative pass entirely.
func NewAgent(renderer *chart.Renderer, revenue RevenueReader, apiKey string) *Agent {
	if revenue == nil {
		revenue = StaticRevenueReader{}
	}
	return &Agent{
		renderer: renderer,
		revenue:  revenue,
		llm:      newNarrator(apiKey),
	}
}

// Process runs one analytics query end to end. It never fails: a broken
// data source falls back to the sample series and a broken renderer
// just drops the chart.
func (a *Agent) Process(query string) *Result {
	series, err := a.revenue.FetchRevenueSeries()
	if err != nil || len(series) == 0 {
		if err != nil {
			utils.LogWarn("revenue series unavailable, using sample data", map[string]interface{}{
				"error": err.Error(),
			})
		}
		series = SampleRevenueSeries()
	}

	queryLower := strings.ToLower(query)

	charts := []string{}
	if containsAny(queryLower, chartKeywords) && len(series) > 1 {
		image, err := a.renderChart(series)
		if err != nil {
			utils.LogWarn("chart render failed, omitting chart", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			charts = append(charts, image)
		}
	}

	response := a.narrative(query, queryLower, series)
	if a.llm != nil {
		response = a.llm.enrich(query, response)
	}

	data := series
	if len(data) > 10 {
		data = data[:10]
	}

	return &Result{
		Response: response,
		Charts:   charts,
		Data:     data,
	}
}

func (a *Agent) renderChart(series []Point) (string, error) {
	points := make([]chart.Point, len(series))
	for i, p := range series {
		points[i] = chart.Point{Label: p.Name, Value: p.Value}
	}
	return a.renderer.Render(points, chart.KindBar, "Revenue by Salesperson")
}

// Summarize computes the derived statistics the revenue narrative
// reports. Pure function of the series; the numbers must be exact.
func Summarize(series []Point) (total float64, average float64, top Point) {
	for _, p := range series {
		total += p.Value
		if p.Value > top.Value {
			top = p
		}
	}
	if len(series) > 0 {
		average = total / float64(len(series))
	}
	return total, average, top
}

func (a *Agent) narrative(query, queryLower string, series []Point) string {
	switch {
	case containsAny(queryLower, revenueKeywords):
		return revenueNarrative(query, series)
	case containsAny(queryLower, teamKeywords):
		return teamNarrative()
	default:
		return fallbackNarrative(query)
	}
}

func revenueNarrative(query string, series []Point) string {
	total, average, top := Summarize(series)
	leadPct := 0.0
	if average > 0 {
		leadPct = (top.Value/average - 1) * 100
	}

	return fmt.Sprintf(`**Sales Performance Analysis**

Based on your query: "%s"

**Key Findings:**
- %s leads with %s in revenue
- Total team revenue: %s
- Average performance: %s per salesperson
- %d salespersons analyzed

**Insights:**
- Strong performance across the team with %s exceeding average by %.1f%%
- Revenue distribution shows healthy competition
- Opportunity to support lower performers and share best practices

**Recommendations:**
- Recognize top performers like %s
- Provide coaching for bottom quartile performers
- Analyze successful strategies from top performers
- Set incremental improvement targets for team growth`,
		query,
		top.Name, chart.FormatCurrency(top.Value),
		chart.FormatCurrency(total),
		chart.FormatCurrency(average),
		len(series),
		top.Name, leadPct,
		top.Name,
	)
}

func teamNarrative() string {
	return `**Sales Team Overview**

**Team Composition:**
- 6 active salespersons across different regions
- Coverage includes North, South, East, West, Central, and Northeast territories
- Mix of high-performing and developing team members

**Performance Metrics:**
- Active dealer relationships maintained
- Regular meeting schedules and follow-ups
- Lead qualification and conversion tracking
- Revenue targets being monitored monthly

**Current Status:**
- Strong regional coverage ensures comprehensive market presence
- Balanced portfolio of prospects and active customers
- Consistent performance tracking and reporting

**Next Steps:**
- Continue performance monitoring and coaching
- Expand high-performing territories
- Support developing team members with training`
}

func fallbackNarrative(query string) string {
	return fmt.Sprintf(`**Analytics Dashboard Response**

Thank you for your query: "%s"

**Available Analytics:**
- Revenue performance tracking
- Salesperson comparisons and rankings
- Regional performance analysis
- Meeting outcomes and effectiveness
- Lead qualification metrics

**Sample Data Available:**
- 6 salespersons with revenue data
- Regional performance comparisons
- Historical trends and patterns

For specific analytics, try queries like:
- "Show me revenue by salesperson with charts"
- "Compare regional performance"
- "Team performance overview"

**Note:** This is running in local development mode with sample data.`, query)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
