package services

import (
	"context"

	"github.com/corebank/retail_banking_app/internal/core/domain"
	"github.com/corebank/retail_banking_app/internal/dto"
)

// CustomerSvcFacade defines the customer operations exposed to handlers.
type CustomerSvcFacade interface {
	RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error)
	Login(ctx context.Context, req dto.LoginRequest) (string, error)
	GetCustomerDetails(ctx context.Context, customerID int64) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, customerID int64, req dto.UpdateProfileRequest) (*domain.Customer, error)
	UpdatePassword(ctx context.Context, customerID int64, req dto.UpdatePasswordRequest) error
}
