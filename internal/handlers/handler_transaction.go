package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portssvc "github.com/corebank/retail_banking_app/internal/core/ports/services"
	"github.com/corebank/retail_banking_app/internal/dto"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles HTTP requests for deposits, withdrawals,
// transfers and the transaction listing.
type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ts portssvc.TransactionSvcFacade) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

// CreateTransaction godoc
// @Summary Record a deposit or withdrawal
// @Description Appends a DEBIT or CREDIT transaction to an account and updates its balance atomically
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResult
// @Failure 400 "Invalid input"
// @Failure 404 "Account not found"
// @Security BearerAuth
// @Router /transaction [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	var result *dto.TransactionResult
	var err error
	if req.TransactionType == domain.Debit {
		result, err = h.transactionService.CreateWithdrawal(c.Request.Context(), req.AccountID, req.TransactionAmount)
	} else {
		result, err = h.transactionService.CreateDeposit(c.Request.Context(), req.AccountID, req.TransactionAmount)
	}
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Account not found")
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to create transaction")
		}
		return
	}

	respondOK(c, http.StatusOK, "Transaction created successfully.", result)
}

// TransferFunds godoc
// @Summary Transfer funds between two accounts
// @Description Records a debit on the donor and a credit on the recipient and updates both balances as one atomic unit
// @Tags transactions
// @Accept json
// @Produce json
// @Param transfer body dto.TransferFundsRequest true "Transfer details"
// @Success 200 {object} dto.TransferResult
// @Failure 400 "Invalid input or same-account transfer"
// @Failure 404 "Donor or recipient account not found"
// @Security BearerAuth
// @Router /transaction/transfer [post]
func (h *TransactionHandler) TransferFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransferFunds", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.transactionService.TransferFunds(c.Request.Context(), req.DonorID, req.RecipientID, req.TransactionAmount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSameAccount):
			respondError(c, http.StatusBadRequest, "Donor and recipient account must differ")
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "Donor or recipient account not found")
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.Error("Failed to transfer funds", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to transfer funds")
		}
		return
	}

	respondOK(c, http.StatusOK, "Funds transferred successfully.", result)
}

// ListTransactions godoc
// @Summary List the customer's transactions
// @Description Lists transactions across all of the customer's accounts, optionally filtered by a search term matching amount or type
// @Tags transactions
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} dto.TransactionListResponse
// @Security BearerAuth
// @Router /transaction [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	searchTerm := c.Query("q")
	result, err := h.transactionService.ListTransactions(c.Request.Context(), customerID, searchTerm)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	message := "Transactions fetched successfully."
	if len(result.Transactions) == 0 {
		message = "No transactions found."
	}
	respondOK(c, http.StatusOK, message, result)
}
