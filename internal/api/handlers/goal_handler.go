package handlers

import (
	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/service"
	"savium/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// List godoc
// @Summary List the caller's goals
// @Tags goals
// @Produce json
// @Param search query string false "Case-insensitive substring match on name"
// @Param category query string false "Goal category"
// @Param status query string false "Goal status"
// @Param sort query string false "Sort field (name, amount, targetDate)"
// @Security Bearer
// @Success 200 {array} dto.GoalResponse
// @Failure 400 {object} apperr.Error
// @Router /api/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	var query dto.GoalListQuery
	if err := c.QueryParser(&query); err != nil {
		return apperr.BadRequest("Invalid query parameters.")
	}

	if errs := query.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	goals, err := h.goalService.List(c.Context(), user.ID, &query)
	if err != nil {
		return err
	}

	return c.JSON(goals)
}

// Get godoc
// @Summary Get a single goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} apperr.Error
// @Router /api/goals/{id} [get]
func (h *GoalHandler) Get(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	goal, err := h.goalService.Get(c.Context(), user.ID, goalID)
	if err != nil {
		return err
	}

	return c.JSON(goal)
}

// Create godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal"
// @Security Bearer
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} apperr.Error
// @Router /api/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	goal, err := h.goalService.Create(c.Context(), user.ID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// Update godoc
// @Summary Update a goal
// @Description Fields not supplied are left unchanged; progress is recomputed
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalRequest true "Partial goal"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} apperr.Error
// @Router /api/goals/{id} [put]
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	goal, err := h.goalService.Update(c.Context(), user.ID, goalID, &req)
	if err != nil {
		return err
	}

	return c.JSON(goal)
}

// Delete godoc
// @Summary Delete a goal and its transactions
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} apperr.Error
// @Router /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	goal, err := h.goalService.Delete(c.Context(), user.ID, goalID)
	if err != nil {
		return err
	}

	return c.JSON(goal)
}

// AddSavings godoc
// @Summary Apply savings to a goal
// @Description Caps the contribution at the remaining gap and records a saving transaction
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.AddSavingsRequest true "Amount"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/goals/{id}/transactions [post]
func (h *GoalHandler) AddSavings(c *fiber.Ctx) error {
	goalID, err := parseGoalID(c)
	if err != nil {
		return err
	}

	var req dto.AddSavingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	goal, err := h.goalService.AddSavings(c.Context(), user.ID, goalID, &req)
	if err != nil {
		return err
	}

	return c.JSON(goal)
}

func parseGoalID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid goal ID.")
	}
	return id, nil
}
