package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	portssvc "github.com/corebank/retail_banking_app/internal/core/ports/services"
	"github.com/corebank/retail_banking_app/internal/dto"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests related to accounts.
type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(as portssvc.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{accountService: as}
}

// CreateAccount godoc
// @Summary Open a new account
// @Description Opens a new account for the logged-in customer with a zero balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 "Invalid input"
// @Security BearerAuth
// @Router /account [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), customerID, req)
	if err != nil {
		logger.Error("Failed to create account", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	respondOK(c, http.StatusOK, "Account created successfully.", dto.ToAccountResponse(account))
}

// ListAccounts godoc
// @Summary List the customer's accounts
// @Description Fetches all live accounts owned by the logged-in customer
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /account [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accounts, err := h.accountService.ListCustomerAccounts(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}

	message := "Accounts fetched successfully."
	if len(accounts) == 0 {
		message = "No Accounts found."
	}
	respondOK(c, http.StatusOK, message, dto.ToAccountResponseList(accounts))
}

// DeleteAccount godoc
// @Summary Close an account
// @Description Soft-deletes the customer's account; its transaction history is kept
// @Tags accounts
// @Produce json
// @Param uuid path string true "Account UUID"
// @Success 200 "Account closed"
// @Failure 400 "Malformed account UUID"
// @Failure 404 "Account not found"
// @Security BearerAuth
// @Router /account/{uuid} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accountUUID := c.Param("uuid")
	if err := dto.ValidateAccountUUID(accountUUID); err != nil {
		logger.Warn("Malformed account UUID", slog.String("uuid", accountUUID))
		respondError(c, http.StatusBadRequest, "Malformed account identifier")
		return
	}

	if err := h.accountService.CloseAccount(c.Request.Context(), customerID, accountUUID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Account not found")
			return
		}
		logger.Error("Failed to close account", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to close account")
		return
	}

	respondOK(c, http.StatusOK, "Account deleted successfully.", nil)
}
