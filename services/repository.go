package services

import (
	"context"

	"creditapp-backend/models"

	"github.com/google/uuid"
)

// CustomerRepository is the storage boundary for customers. Lookups return
// (nil, nil) when no record matches; errors are reserved for storage failures.
type CustomerRepository interface {
	Save(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Delete(ctx context.Context, id uint) error
}

// CreditRepository is the storage boundary for credits. Same lookup
// convention as CustomerRepository.
type CreditRepository interface {
	Save(ctx context.Context, credit *models.Credit) error
	FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*models.Credit, error)
	FindAllByCustomerID(ctx context.Context, customerID uint) ([]models.Credit, error)
}
