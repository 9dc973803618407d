package models

import "time"

// ChatRequest is the body of POST /api/chat. AgentType defaults to
// "manager" when omitted; SessionID is generated when empty.
type ChatRequest struct {
	Message   string `json:"message"`
	AgentType string `json:"agent_type"`
	SessionID string `json:"session_id"`
}

// NamedValue is one relabeled (label, amount) pair of an analytics
// payload as returned to API clients.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChatResponse is the composed reply of POST /api/chat.
type ChatResponse struct {
	Response  string       `json:"response"`
	AgentType string       `json:"agent_type"`
	SessionID string       `json:"session_id"`
	Charts    []string     `json:"charts"`
	Data      []NamedValue `json:"data,omitempty"`
}

type CreateSalespersonRequest struct {
	Name          string  `json:"name"`
	Region        string  `json:"region"`
	GPSLocation   string  `json:"gps_location"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	TotalRevenue  float64 `json:"total_revenue"`
	MonthlyTarget float64 `json:"monthly_target"`
	IsActive      *bool   `json:"is_active"`
}

type CreateDealerRequest struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Status        string `json:"status"`
}

type CreateMeetingRequest struct {
	SalespersonID   string     `json:"salesperson_id"`
	DealerID        string     `json:"dealer_id"`
	Notes           string     `json:"notes"`
	Outcome         string     `json:"outcome"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	Location        string     `json:"location"`
	DurationMinutes int        `json:"duration_minutes"`
}

type CreateLeadRequest struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Score      *int   `json:"score"`
	Notes      string `json:"notes"`
	AssignedTo string `json:"assigned_to"`
}

type CreateLoginSessionRequest struct {
	SalespersonID string    `json:"salesperson_id"`
	LoginTime     time.Time `json:"login_time"`
	Location      string    `json:"location"`
	DeviceInfo    string    `json:"device_info"`
}

type LogoutRequest struct {
	LogoutTime time.Time `json:"logout_time"`
}

type CreateSalesRecordRequest struct {
	SalespersonID  string    `json:"salesperson_id"`
	SaleAmount     float64   `json:"sale_amount"`
	ProductName    string    `json:"product_name"`
	CustomerName   string    `json:"customer_name"`
	SaleDate       time.Time `json:"sale_date"`
	CommissionRate *float64  `json:"commission_rate"`
}
