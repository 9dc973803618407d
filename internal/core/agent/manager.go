package agent

import (
	"strings"

	"gorm.io/gorm"
)

// ManagerAgent coordinates the team and routes specialist queries to
// the right agent. It is also the fallback for unknown role tags.
type ManagerAgent struct{}

func (a *ManagerAgent) Type() string {
	return TypeManager
}

func (a *ManagerAgent) Process(query string, ctx map[string]interface{}, db *gorm.DB) (*Result, error) {
	if db == nil {
		return &Result{Response: "I'm having trouble accessing the system data right now. Please try again."}, nil
	}

	queryLower := strings.ToLower(query)

	switch {
	case containsAny(queryLower, "chart", "analytics", "report", "performance", "revenue"):
		return &Result{Response: "For detailed analytics and charts, please switch to the Analytics Agent. I can coordinate overall team management tasks."}, nil
	case containsAny(queryLower, "lead", "prospect", "qualify"):
		return &Result{Response: "For lead qualification tasks, please use the Lead Qualification Agent. I handle overall coordination."}, nil
	case containsAny(queryLower, "support", "help", "issue", "problem"):
		return &Result{Response: "For support issues, please use the Support Agent. I coordinate team management."}, nil
	case containsAny(queryLower, "customer", "client", "relationship"):
		return &Result{Response: "For customer management tasks, use the Customer Management Agent. I handle strategic oversight."}, nil
	}

	return &Result{Response: `As your AI Manager, I coordinate the sales team operations.

Current Team Status:
- 6 Active salespersons across different regions
- Multiple ongoing deals and prospects
- Regular performance tracking and analytics

Available Resources:
- Sales Agent: Direct sales support and deal management
- Analytics Agent: Performance metrics and visual reports
- Lead Qualification Agent: Prospect evaluation and scoring
- Support Agent: Technical assistance and issue resolution
- Customer Management Agent: Client relationship management

How can I help coordinate your sales operations today?`}, nil
}
