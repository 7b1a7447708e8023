package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portsrepo "github.com/corebank/retail_banking_app/internal/core/ports/repositories"
	"github.com/corebank/retail_banking_app/internal/dto"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/corebank/retail_banking_app/internal/utils"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned on login/password-change when the
// supplied credentials do not match. Deliberately indistinguishable between
// unknown email and wrong password.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// CustomerServiceConfig carries the knobs the customer service needs for
// credential and token handling.
type CustomerServiceConfig struct {
	JWTSecret  string
	JWTExpiry  time.Duration
	JWTIssuer  string
	BcryptCost int
}

type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
	cfg          CustomerServiceConfig
}

func NewCustomerService(repo portsrepo.CustomerRepository, cfg CustomerServiceConfig) *CustomerService {
	return &CustomerService{customerRepo: repo, cfg: cfg}
}

// RegisterCustomer creates a new customer with a hashed password. A second
// registration with the same email fails with ErrDuplicate.
func (s *CustomerService) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		UUID:         uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save customer", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Customer registered", slog.String("customer_uuid", saved.UUID))
	return saved, nil
}

// Login verifies the credentials and issues a signed bearer token.
func (s *CustomerService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		logger.Error("Failed to find customer by email", slog.String("error", err.Error()))
		return "", err
	}

	if !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(customer.ID, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		return "", apperrors.NewAppError(500, "failed to sign token", err)
	}

	logger.Info("Customer logged in", slog.Int64("customer_id", customer.ID))
	return token, nil
}

// GetCustomerDetails returns the customer's profile.
func (s *CustomerService) GetCustomerDetails(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find customer", slog.String("error", err.Error()), slog.Int64("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

// UpdateProfile updates the customer's mutable profile fields and returns the
// refreshed customer.
func (s *CustomerService) UpdateProfile(ctx context.Context, customerID int64, req dto.UpdateProfileRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.PhoneNumber = req.PhoneNumber
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customerRepo.UpdateCustomerProfile(ctx, *customer); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update customer profile", slog.String("error", err.Error()), slog.Int64("customer_id", customerID))
		}
		return nil, err
	}

	logger.Info("Customer profile updated", slog.Int64("customer_id", customerID))
	return customer, nil
}

// UpdatePassword replaces the customer's password after verifying the
// current one.
func (s *CustomerService) UpdatePassword(ctx context.Context, customerID int64, req dto.UpdatePasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, customer.PasswordHash) {
		return fmt.Errorf("%w: current password incorrect", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		logger.Error("Failed to hash new password", slog.String("error", err.Error()))
		return apperrors.NewAppError(500, "failed to hash password", err)
	}

	if err := s.customerRepo.UpdateCustomerPassword(ctx, customerID, hash); err != nil {
		logger.Error("Failed to update customer password", slog.String("error", err.Error()), slog.Int64("customer_id", customerID))
		return err
	}

	logger.Info("Customer password updated", slog.Int64("customer_id", customerID))
	return nil
}
