package agent

import (
	"fmt"

	"gorm.io/gorm"
)

// SupportAgent handles platform usage questions. It never touches the
// store, so it behaves identically with or without a handle.
type SupportAgent struct{}

func (a *SupportAgent) Type() string {
	return TypeSupport
}

func (a *SupportAgent) Process(query string, ctx map[string]interface{}, db *gorm.DB) (*Result, error) {
	return &Result{Response: fmt.Sprintf(`**Support Assistance**

I'm here to help with any technical issues or questions about the sales system.

Common Support Topics:
- System navigation and features
- Data interpretation and analysis
- Agent selection and usage
- Chart and visualization questions
- Performance tracking guidance

Your Query: %s

Response: I can assist with technical support, system guidance, and help you navigate the sales management platform effectively. Please let me know what specific assistance you need!

For complex analytics or data visualization, I recommend using the Analytics Agent.
For sales-specific questions, the Sales Agent would be most helpful.`, query)}, nil
}
