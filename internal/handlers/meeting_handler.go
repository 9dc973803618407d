package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
)

type MeetingHandler struct {
	meetingRepo     repositories.MeetingRepo
	salespersonRepo repositories.SalespersonRepo
}

func NewMeetingHandler(meetingRepo repositories.MeetingRepo, salespersonRepo repositories.SalespersonRepo) *MeetingHandler {
	return &MeetingHandler{
		meetingRepo:     meetingRepo,
		salespersonRepo: salespersonRepo,
	}
}

// List godoc
// @Summary List meetings
// @Tags Meetings
// @Produce json
// @Param salesperson_id query string false "Filter by salesperson"
// @Success 200 {array} models.Meeting
// @Failure 503 {object} map[string]interface{}
// @Router /api/meetings [get]
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	if h.meetingRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}

	meetings, err := h.meetingRepo.List(c.Query("salesperson_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch meetings",
		})
	}
	return c.JSON(meetings)
}

// Create godoc
// @Summary Record a meeting
// @Description Records a salesperson meeting, optionally tied to a dealer
// @Tags Meetings
// @Accept json
// @Produce json
// @Param meeting body models.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} models.Meeting
// @Failure 400 {object} map[string]interface{}
// @Router /api/meetings [post]
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	if h.meetingRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}

	var req models.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	salespersonID, err := uuid.Parse(req.SalespersonID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid salesperson_id",
		})
	}

	exists, err := h.salespersonRepo.Exists(salespersonID)
	if err != nil || !exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "salesperson not found",
		})
	}

	meeting := &models.Meeting{
		SalespersonID:   salespersonID,
		Notes:           req.Notes,
		Outcome:         req.Outcome,
		FollowUpDate:    req.FollowUpDate,
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
	}

	if req.DealerID != "" {
		dealerID, err := uuid.Parse(req.DealerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid dealer_id",
			})
		}
		meeting.DealerID = &dealerID
	}

	if err := h.meetingRepo.Create(meeting); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create meeting",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(meeting)
}
