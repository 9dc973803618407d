package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforce/sales-agent-api/internal/core/agent"
	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
	"github.com/fieldforce/sales-agent-api/internal/core/chart"
	"github.com/fieldforce/sales-agent-api/internal/core/session"
	"github.com/fieldforce/sales-agent-api/internal/models"
)

type loggedExchange struct {
	sessionID string
	agentType string
}

type fakeConversationRepo struct {
	logged []loggedExchange
	fail   bool
}

func (f *fakeConversationRepo) Log(sessionID, userMessage, response, agentType string) error {
	if f.fail {
		return errors.New("insert failed")
	}
	f.logged = append(f.logged, loggedExchange{sessionID: sessionID, agentType: agentType})
	return nil
}

func (f *fakeConversationRepo) GetBySession(sessionID string, limit int) ([]models.Conversation, error) {
	return nil, nil
}

func (f *fakeConversationRepo) CountSince(since time.Time) (int64, error) {
	return int64(len(f.logged)), nil
}

func newTestChatService(conversations *fakeConversationRepo) *ChatService {
	advanced := analytics.NewAgent(chart.NewRenderer(), nil, "")
	registry := agent.NewRegistry(advanced)
	if conversations == nil {
		return NewChatService(registry, session.NewStore(), nil, nil)
	}
	return NewChatService(registry, session.NewStore(), conversations, nil)
}

func TestChat_DegradedWithoutDatabase(t *testing.T) {
	svc := newTestChatService(nil)

	res := svc.Chat(&models.ChatRequest{Message: "hello", AgentType: "manager"})
	require.NotNil(t, res)

	assert.Equal(t, "manager", res.AgentType)
	assert.NotEmpty(t, res.SessionID)
	assert.Contains(t, res.Response, "I'm having trouble accessing the system data")
	assert.NotNil(t, res.Charts, "charts must serialize as [], not null")
	assert.Empty(t, res.Charts)
}

func TestChat_UnknownAgentTypeGetsManager(t *testing.T) {
	svc := newTestChatService(nil)

	res := svc.Chat(&models.ChatRequest{Message: "hello", AgentType: "astrologer"})
	assert.Equal(t, "manager", res.AgentType)
}

func TestChat_SessionReuse(t *testing.T) {
	svc := newTestChatService(nil)

	first := svc.Chat(&models.ChatRequest{Message: "hi", AgentType: "manager"})
	second := svc.Chat(&models.ChatRequest{Message: "again", AgentType: "manager", SessionID: first.SessionID})

	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, 4, svc.SessionLen(first.SessionID), "two exchanges, four turns")
}

func TestChat_AnalyticsDataRelabeled(t *testing.T) {
	svc := newTestChatService(nil)

	res := svc.Chat(&models.ChatRequest{Message: "show revenue by salesperson", AgentType: "analytics"})

	require.NotEmpty(t, res.Data)
	assert.Equal(t, "Emily Davis", res.Data[0].Name)
	assert.Equal(t, 61000.0, res.Data[0].Value)
	require.Len(t, res.Charts, 1)
}

func TestChat_ConversationPersisted(t *testing.T) {
	repo := &fakeConversationRepo{}
	svc := newTestChatService(repo)

	res := svc.Chat(&models.ChatRequest{Message: "hello", AgentType: "sales"})

	require.Len(t, repo.logged, 1)
	assert.Equal(t, res.SessionID, repo.logged[0].sessionID)
	assert.Equal(t, "sales", repo.logged[0].agentType)
}

func TestChat_PersistenceFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeConversationRepo{fail: true}
	svc := newTestChatService(repo)

	res := svc.Chat(&models.ChatRequest{Message: "hello", AgentType: "manager"})

	require.NotNil(t, res)
	assert.NotEmpty(t, res.Response)
	// The in-memory log still advanced.
	assert.Equal(t, 2, svc.SessionLen(res.SessionID))
}
