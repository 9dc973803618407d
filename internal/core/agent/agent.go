package agent

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
	"github.com/fieldforce/sales-agent-api/internal/utils"
)

// Agent role tags. The set is closed; unknown tags resolve to the
// manager (see Registry.Get).
const (
	TypeManager            = "manager"
	TypeSales              = "sales"
	TypeAnalytics          = "analytics"
	TypeSupport            = "support"
	TypeLeadQualification  = "lead_qualification"
	TypeCustomerManagement = "customer_management"
)

// Result is a responder reply: narrative text plus zero or more chart
// data URIs and optional tabular rows.
type Result struct {
	Response string
	Charts   []string
	Data     []analytics.Point
}

// Responder converts a query string into a reply. db may be nil; every
// responder degrades to static content in that case.
type Responder interface {
	Type() string
	Process(query string, ctx map[string]interface{}, db *gorm.DB) (*Result, error)
}

// Registry owns one responder per role.
type Registry struct {
	manager   *ManagerAgent
	sales     *SalesAgent
	analytics *AnalyticsAgent
	support   *SupportAgent
	lead      *LeadQualificationAgent
	customer  *CustomerManagementAgent
}

func NewRegistry(advanced *analytics.Agent) *Registry {
	return &Registry{
		manager:   &ManagerAgent{},
		sales:     &SalesAgent{},
		analytics: NewAnalyticsAgent(advanced),
		support:   &SupportAgent{},
		lead:      &LeadQualificationAgent{},
		customer:  &CustomerManagementAgent{},
	}
}

// Get resolves a role tag to its responder. The default arm is the
// documented fallback: an unknown tag silently gets the manager, it is
// not an error.
func (g *Registry) Get(agentType string) Responder {
	switch agentType {
	case TypeSales:
		return g.sales
	case TypeAnalytics:
		return g.analytics
	case TypeSupport:
		return g.support
	case TypeLeadQualification:
		return g.lead
	case TypeCustomerManagement:
		return g.customer
	default:
		return g.manager
	}
}

// Dispatch runs one responder and guarantees a usable reply: errors and
// panics inside a responder never escape this boundary, they become an
// apology text instead.
func Dispatch(r Responder, query string, ctx map[string]interface{}, db *gorm.DB) (result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			utils.LogError("responder panicked", fmt.Errorf("%v", rec), map[string]interface{}{
				"agent_type": r.Type(),
			})
			result = apology()
		}
	}()

	res, err := r.Process(query, ctx, db)
	if err != nil {
		utils.LogError("responder failed", err, map[string]interface{}{
			"agent_type": r.Type(),
		})
		return apology()
	}
	if res == nil {
		return apology()
	}
	return res
}

func apology() *Result {
	return &Result{
		Response: "I'm having trouble processing that request right now. Please try again.",
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
