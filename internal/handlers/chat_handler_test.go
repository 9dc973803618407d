package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforce/sales-agent-api/internal/core/agent"
	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
	"github.com/fieldforce/sales-agent-api/internal/core/chart"
	"github.com/fieldforce/sales-agent-api/internal/core/session"
	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/services"
)

func newChatTestApp() *fiber.App {
	advanced := analytics.NewAgent(chart.NewRenderer(), nil, "")
	registry := agent.NewRegistry(advanced)
	chatService := services.NewChatService(registry, session.NewStore(), nil, nil)

	app := fiber.New()
	app.Post("/api/chat", NewChatHandler(chatService).Chat)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeChatResponse(t *testing.T, resp *http.Response) models.ChatResponse {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out models.ChatResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestChatEndpoint(t *testing.T) {
	app := newChatTestApp()

	t.Run("returns session id and defaults to manager", func(t *testing.T) {
		resp := postJSON(t, app, "/api/chat", `{"message": "hello"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decodeChatResponse(t, resp)
		assert.Equal(t, "manager", out.AgentType)
		assert.NotEmpty(t, out.SessionID)
		assert.NotEmpty(t, out.Response)
		assert.NotNil(t, out.Charts)
	})

	t.Run("session id round trips", func(t *testing.T) {
		first := decodeChatResponse(t, postJSON(t, app, "/api/chat", `{"message": "hi"}`))
		second := decodeChatResponse(t, postJSON(t, app, "/api/chat",
			`{"message": "again", "session_id": "`+first.SessionID+`"}`))
		assert.Equal(t, first.SessionID, second.SessionID)
	})

	t.Run("analytics agent returns charts and data", func(t *testing.T) {
		resp := postJSON(t, app, "/api/chat",
			`{"message": "show revenue chart by salesperson", "agent_type": "analytics"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		out := decodeChatResponse(t, resp)
		assert.Equal(t, "analytics", out.AgentType)
		require.Len(t, out.Charts, 1)
		assert.True(t, strings.HasPrefix(out.Charts[0], "data:image/png;base64,"))
		require.NotEmpty(t, out.Data)
		assert.Equal(t, "Emily Davis", out.Data[0].Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := postJSON(t, app, "/api/chat", `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
