package agent

import "gorm.io/gorm"

// CustomerManagementAgent covers dealer and account relationships.
type CustomerManagementAgent struct{}

func (a *CustomerManagementAgent) Type() string {
	return TypeCustomerManagement
}

func (a *CustomerManagementAgent) Process(query string, ctx map[string]interface{}, db *gorm.DB) (*Result, error) {
	if db == nil {
		return &Result{Response: "I'm having trouble accessing customer data right now. Please try again."}, nil
	}

	return &Result{Response: `Customer Management Overview

👥 Customer Relationship Status:
- Active dealer relationships: 5
- Customer satisfaction tracking
- Regular communication schedules
- Support ticket management

📈 Relationship Metrics:
- Customer engagement levels
- Service response times
- Satisfaction scores and feedback
- Retention and renewal rates

Key Activities:
- Regular check-ins with key accounts
- Issue resolution and support
- Relationship building initiatives
- Customer success planning

Next Steps:
- Schedule quarterly business reviews
- Implement customer feedback collection
- Track satisfaction metrics
- Develop retention strategies

For customer analytics and performance charts, please use the Analytics Agent.`}, nil
}
