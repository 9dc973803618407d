package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat godoc
// @Summary Chat with a sales agent
// @Description Send a message to a role-selected agent and receive text, optional charts and optional data rows
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.AgentType == "" {
		req.AgentType = "manager"
	}

	return c.JSON(h.chatService.Chat(&req))
}
