package agent

import "gorm.io/gorm"

// SalesAgent answers day-to-day sales operation questions.
type SalesAgent struct{}

func (a *SalesAgent) Type() string {
	return TypeSales
}

func (a *SalesAgent) Process(query string, ctx map[string]interface{}, db *gorm.DB) (*Result, error) {
	if db == nil {
		return &Result{Response: "I'm having trouble accessing the sales data right now. Please try again."}, nil
	}

	return &Result{Response: `Sales Team Overview:

Our current sales team consists of 6 salespersons across different regions:
- North, South, East, West, Central, and Northeast territories
- Mix of high-performing and developing team members
- Active dealer relationships and ongoing meetings

Key Metrics:
- Total active salespersons: 6
- Revenue targets being tracked monthly
- Regular dealer meetings and follow-ups scheduled

**Recommendations:**
- Focus on top performers for major deals
- Provide additional support for developing team members
- Maintain regular dealer relationship management

For detailed analytics and charts, please use the Analytics Agent.
For specific lead management, use the Lead Qualification Agent.`}, nil
}
