package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
)

type LeadHandler struct {
	leadRepo        repositories.LeadRepo
	salespersonRepo repositories.SalespersonRepo
}

func NewLeadHandler(leadRepo repositories.LeadRepo, salespersonRepo repositories.SalespersonRepo) *LeadHandler {
	return &LeadHandler{
		leadRepo:        leadRepo,
		salespersonRepo: salespersonRepo,
	}
}

// List godoc
// @Summary List leads
// @Tags Leads
// @Produce json
// @Param status query string false "Filter by status (new, qualified, contacted, converted)"
// @Success 200 {array} models.Lead
// @Failure 503 {object} map[string]interface{}
// @Router /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	if h.leadRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}

	leads, err := h.leadRepo.List(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch leads",
		})
	}
	return c.JSON(leads)
}

// Create godoc
// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body models.CreateLeadRequest true "Lead data"
// @Success 201 {object} models.Lead
// @Failure 400 {object} map[string]interface{}
// @Router /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	if h.leadRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}

	var req models.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lead name is required",
		})
	}

	status := req.Status
	if status == "" {
		status = "new"
	}
	score := 50
	if req.Score != nil {
		score = *req.Score
	}

	lead := &models.Lead{
		Name:     req.Name,
		Company:  req.Company,
		Phone:    req.Phone,
		Email:    req.Email,
		Location: req.Location,
		Source:   req.Source,
		Status:   status,
		Score:    score,
		Notes:    req.Notes,
	}

	if req.AssignedTo != "" {
		assignedTo, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid assigned_to",
			})
		}
		exists, err := h.salespersonRepo.Exists(assignedTo)
		if err != nil || !exists {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "assigned salesperson not found",
			})
		}
		lead.AssignedTo = &assignedTo
	}

	if err := h.leadRepo.Create(lead); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create lead",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}
