package dto

import (
	"github.com/corebank/retail_banking_app/internal/core/domain"
)

// RegisterCustomerRequest defines the data needed to register a customer.
type RegisterCustomerRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"required,max=100"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the customer login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest defines the mutable profile fields.
type UpdateProfileRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=100"`
}

// UpdatePasswordRequest defines a password change guarded by the current password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

// CustomerResponse defines the customer details returned to the client.
type CustomerResponse struct {
	ID          int64  `json:"id"`
	UUID        string `json:"uuid"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		UUID:        c.UUID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}
