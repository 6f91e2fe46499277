package handlers

import (
	"fmt"
	"path/filepath"

	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/service"
	"savium/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	uploadDir   string
	publicURL   string
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, uploadDir, publicURL string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		uploadDir:   uploadDir,
		publicURL:   publicURL,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register with full name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} apperr.Error
// @Failure 409 {object} apperr.Error
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} apperr.Error
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GoogleLogin godoc
// @Summary Login with a Google authorization code
// @Description Exchanges the code for a profile; creates an account on first login
// @Tags auth
// @Produce json
// @Param code query string true "Google authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} apperr.Error
// @Router /api/auth/google [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	resp, err := h.authService.LoginWithGoogle(c.Context(), c.Query("code"))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperr.Error
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(dto.NewUserResponse(user))
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Avatar image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperr.Error
// @Router /api/auth/avatar [post]
func (h *AuthHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return apperr.BadRequest("Avatar image is required.")
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		h.logger.Error("Failed to store avatar", zap.Error(err))
		return err
	}

	imageURL := fmt.Sprintf("%s/uploads/%s", h.publicURL, filename)
	return c.JSON(fiber.Map{"imageUrl": imageURL})
}
