package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/services"
)

type LoginSessionHandler struct {
	sessionService *services.LoginSessionService
}

func NewLoginSessionHandler(sessionService *services.LoginSessionService) *LoginSessionHandler {
	return &LoginSessionHandler{sessionService: sessionService}
}

// List godoc
// @Summary List login sessions
// @Tags LoginSessions
// @Produce json
// @Param salesperson_id query string false "Filter by salesperson"
// @Success 200 {array} models.LoginSession
// @Failure 503 {object} map[string]interface{}
// @Router /api/login-sessions [get]
func (h *LoginSessionHandler) List(c *fiber.Ctx) error {
	sessions, err := h.sessionService.List(c.Query("salesperson_id"))
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch login sessions",
		})
	}
	return c.JSON(sessions)
}

// Create godoc
// @Summary Record a salesperson login
// @Tags LoginSessions
// @Accept json
// @Produce json
// @Param session body models.CreateLoginSessionRequest true "Login session data"
// @Success 201 {object} models.LoginSession
// @Failure 400 {object} map[string]interface{}
// @Router /api/login-sessions [post]
func (h *LoginSessionHandler) Create(c *fiber.Ctx) error {
	var req models.CreateLoginSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessionService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// Logout godoc
// @Summary Close a login session
// @Description Stamps the logout time and derives the session duration in minutes
// @Tags LoginSessions
// @Accept json
// @Produce json
// @Param id path string true "Login session ID"
// @Param logout body models.LogoutRequest true "Logout time"
// @Success 200 {object} models.LoginSession
// @Failure 404 {object} map[string]interface{}
// @Router /api/login-sessions/{id}/logout [put]
func (h *LoginSessionHandler) Logout(c *fiber.Ctx) error {
	var req models.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessionService.Logout(c.Params("id"), req.LogoutTime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStoreUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "login session not found",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}
	return c.JSON(session)
}
