package services

import (
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/core/agent"
	"github.com/fieldforce/sales-agent-api/internal/core/session"
	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
	"github.com/fieldforce/sales-agent-api/internal/utils"
)

// ChatService is the conversational request pipeline: session
// resolution, responder dispatch, response normalization, best-effort
// persistence and the in-memory log append.
type ChatService struct {
	registry      *agent.Registry
	sessions      *session.Store
	conversations repositories.ConversationRepo
	db            *gorm.DB
}

// NewChatService wires the pipeline. conversations and db may be nil;
// the service then runs fully degraded and still answers every request.
func NewChatService(registry *agent.Registry, sessions *session.Store, conversations repositories.ConversationRepo, db *gorm.DB) *ChatService {
	return &ChatService{
		registry:      registry,
		sessions:      sessions,
		conversations: conversations,
		db:            db,
	}
}

// Chat processes one chat message. It never fails: every internal
// problem collapses into a degraded but valid response.
func (s *ChatService) Chat(req *models.ChatRequest) *models.ChatResponse {
	sessionID := s.sessions.GetOrCreate(req.SessionID)

	responder := s.registry.Get(req.AgentType)

	ctx := map[string]interface{}{
		"session_history": s.sessions.History(sessionID),
	}
	result := agent.Dispatch(responder, req.Message, ctx, s.db)

	// Persist the text of the exchange. A failed write is logged and
	// dropped; it never fails the request.
	if s.conversations != nil {
		if err := s.conversations.Log(sessionID, req.Message, result.Response, responder.Type()); err != nil {
			utils.LogWarn("could not save conversation to database", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}

	// The in-memory log is appended regardless of persistence outcome.
	s.sessions.AppendExchange(sessionID, req.Message, result.Response, responder.Type())

	charts := result.Charts
	if charts == nil {
		charts = []string{}
	}

	var data []models.NamedValue
	if len(result.Data) > 0 {
		data = make([]models.NamedValue, len(result.Data))
		for i, p := range result.Data {
			data[i] = models.NamedValue{Name: p.Name, Value: p.Value}
		}
	}

	return &models.ChatResponse{
		Response:  result.Response,
		AgentType: responder.Type(),
		SessionID: sessionID,
		Charts:    charts,
		Data:      data,
	}
}

// SessionLen reports the in-memory log length for a session.
func (s *ChatService) SessionLen(sessionID string) int {
	return s.sessions.Len(sessionID)
}
