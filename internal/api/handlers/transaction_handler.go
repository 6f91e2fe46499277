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

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// List godoc
// @Summary List the caller's transactions
// @Tags transactions
// @Produce json
// @Param type query string false "Transaction type (income, expense)"
// @Param category query string false "Category"
// @Param sort query string false "Sort field (date, amount)"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} apperr.Error
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var query dto.TransactionListQuery
	if err := c.QueryParser(&query); err != nil {
		return apperr.BadRequest("Invalid query parameters.")
	}

	if errs := query.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	transactions, err := h.txService.List(c.Context(), user.ID, &query)
	if err != nil {
		return err
	}

	return c.JSON(transactions)
}

// Get godoc
// @Summary Get a single transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} apperr.Error
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	txID, err := parseTransactionID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	tx, err := h.txService.Get(c.Context(), user.ID, txID)
	if err != nil {
		return err
	}

	return c.JSON(tx)
}

// Create godoc
// @Summary Record an income or expense transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} apperr.Error
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	tx, err := h.txService.Create(c.Context(), user.ID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(tx)
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Partial transaction"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} apperr.Error
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	txID, err := parseTransactionID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if errs := req.Validate(); errs.Any() {
		return apperr.InvalidInput(errs)
	}

	user := middleware.CurrentUser(c)
	tx, err := h.txService.Update(c.Context(), user.ID, txID, &req)
	if err != nil {
		return err
	}

	return c.JSON(tx)
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} apperr.Error
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	txID, err := parseTransactionID(c)
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	tx, err := h.txService.Delete(c.Context(), user.ID, txID)
	if err != nil {
		return err
	}

	return c.JSON(tx)
}

// Finances godoc
// @Summary Get the caller's finance summary
// @Description Sums income and expense transactions; saving transactions are excluded
// @Tags finances
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.FinanceResponse
// @Router /api/finances [get]
func (h *TransactionHandler) Finances(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	summary, err := h.txService.FinanceSummary(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(summary)
}

func parseTransactionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid transaction ID.")
	}
	return id, nil
}
