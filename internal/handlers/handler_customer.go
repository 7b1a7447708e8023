package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	portssvc "github.com/corebank/retail_banking_app/internal/core/ports/services"
	"github.com/corebank/retail_banking_app/internal/core/services"
	"github.com/corebank/retail_banking_app/internal/dto"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for registration, login and profile
// management.
type CustomerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs portssvc.CustomerSvcFacade) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// Register godoc
// @Summary Register a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.RegisterCustomerRequest true "Customer details"
// @Success 200 "Customer registered"
// @Failure 400 "Invalid input or email already registered"
// @Router /customer [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Register", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if _, err := h.customerService.RegisterCustomer(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, http.StatusBadRequest, "Email is already registered")
			return
		}
		logger.Error("Failed to register customer", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to register customer")
		return
	}

	respondOK(c, http.StatusOK, "Customer registered successfully.", nil)
}

// Login godoc
// @Summary Log a customer in
// @Tags customers
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 "Incorrect email or password"
// @Router /customer/login [post]
func (h *CustomerHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	token, err := h.customerService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		logger.Error("Failed to log customer in", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondOK(c, http.StatusOK, "Customer logged in successfully.", dto.LoginResponse{Token: token})
}

// GetDetails godoc
// @Summary Fetch the logged-in customer's details
// @Tags customers
// @Produce json
// @Success 200 {object} dto.CustomerResponse
// @Security BearerAuth
// @Router /customer [get]
func (h *CustomerHandler) GetDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	customer, err := h.customerService.GetCustomerDetails(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "No Customer found.")
			return
		}
		logger.Error("Failed to fetch customer details", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to fetch customer details")
		return
	}

	respondOK(c, http.StatusOK, "Customer details fetched successfully.", dto.ToCustomerResponse(customer))
}

// UpdateProfile godoc
// @Summary Update the logged-in customer's profile
// @Tags customers
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.CustomerResponse
// @Security BearerAuth
// @Router /customer [put]
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateProfile(c.Request.Context(), customerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "No Customer found.")
			return
		}
		logger.Error("Failed to update customer profile", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to update customer details")
		return
	}

	respondOK(c, http.StatusOK, "Customer details updated successfully.", dto.ToCustomerResponse(customer))
}

// UpdatePassword godoc
// @Summary Change the logged-in customer's password
// @Tags customers
// @Accept json
// @Produce json
// @Param passwords body dto.UpdatePasswordRequest true "Current and new password"
// @Success 200 "Password updated"
// @Failure 400 "Current password incorrect"
// @Security BearerAuth
// @Router /customer/password [put]
func (h *CustomerHandler) UpdatePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID, ok := middleware.GetCustomerIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Customer ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePassword", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := h.customerService.UpdatePassword(c.Request.Context(), customerID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "Incorrect password")
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "No Customer found.")
		default:
			logger.Error("Failed to update customer password", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	respondOK(c, http.StatusOK, "Customer password updated successfully.", nil)
}
