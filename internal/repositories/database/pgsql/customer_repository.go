package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portsrepo "github.com/corebank/retail_banking_app/internal/core/ports/repositories"
	"github.com/corebank/retail_banking_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// NewCustomerRepository creates a new repository for customer data.
func NewCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		ID:          d.ID,
		UUID:        d.UUID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PhoneNumber: d.PhoneNumber,
		Email:       d.Email,
		Password:    d.PasswordHash,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
			DeletedAt: d.DeletedAt,
		},
	}
}

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		ID:           m.ID,
		UUID:         m.UUID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		PhoneNumber:  m.PhoneNumber,
		Email:        m.Email,
		PasswordHash: m.Password,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			DeletedAt: m.DeletedAt,
		},
	}
}

// SaveCustomer inserts a new customer and returns it with the assigned ID.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	modelCust := toModelCustomer(customer)

	query := `
		INSERT INTO customers (uuid, first_name, last_name, phone_number, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelCust.UUID,
		modelCust.FirstName,
		modelCust.LastName,
		modelCust.PhoneNumber,
		modelCust.Email,
		modelCust.Password,
		modelCust.CreatedAt,
		modelCust.UpdatedAt,
	).Scan(&modelCust.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: customer with email %s already registered", apperrors.ErrDuplicate, modelCust.Email)
		}
		return nil, fmt.Errorf("failed to save customer %s: %w", modelCust.UUID, err)
	}

	saved := toDomainCustomer(modelCust)
	return &saved, nil
}

// FindCustomerByID retrieves a live customer by internal ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `
		SELECT id, uuid, first_name, last_name, phone_number, email, password, created_at, updated_at, deleted_at
		FROM customers
		WHERE id = $1 AND deleted_at IS NULL;
	`
	return r.findCustomer(ctx, query, customerID)
}

// FindCustomerByEmail retrieves a live customer by email address.
func (r *PgxCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `
		SELECT id, uuid, first_name, last_name, phone_number, email, password, created_at, updated_at, deleted_at
		FROM customers
		WHERE email = $1 AND deleted_at IS NULL;
	`
	return r.findCustomer(ctx, query, email)
}

func (r *PgxCustomerRepository) findCustomer(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var modelCust models.Customer
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelCust.ID,
		&modelCust.UUID,
		&modelCust.FirstName,
		&modelCust.LastName,
		&modelCust.PhoneNumber,
		&modelCust.Email,
		&modelCust.Password,
		&modelCust.CreatedAt,
		&modelCust.UpdatedAt,
		&modelCust.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	domainCust := toDomainCustomer(modelCust)
	return &domainCust, nil
}

// UpdateCustomerProfile updates the mutable profile fields.
func (r *PgxCustomerRepository) UpdateCustomerProfile(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, phone_number = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.PhoneNumber,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", customer.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateCustomerPassword replaces the stored password hash.
func (r *PgxCustomerRepository) UpdateCustomerPassword(ctx context.Context, customerID int64, passwordHash string) error {
	query := `
		UPDATE customers
		SET password = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, customerID, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update password for customer %d: %w", customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
