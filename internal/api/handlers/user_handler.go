package handlers

import (
	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} apperr.Error
// @Router /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(users)
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apperr.Error
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// Update godoc
// @Summary Update a user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Partial profile"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user, err := h.userService.Update(c.Context(), userID, &req)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// Delete godoc
// @Summary Delete a user
// @Description Removes the account only; the user's goals and transactions are kept
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Delete(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid user ID.")
	}
	return id, nil
}
