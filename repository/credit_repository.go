package repository

import (
	"context"
	"errors"

	"creditapp-backend/models"
	"creditapp-backend/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditRepository persists credits in Postgres through gorm. Credits are
// insert-only; there is no update path.
type CreditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

func (r *CreditRepository) Save(ctx context.Context, credit *models.Credit) error {
	if err := r.db.WithContext(ctx).Create(credit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return services.ErrStorageConflict
		}
		return err
	}
	return nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*models.Credit, error) {
	var credit models.Credit
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("credit_code = ?", creditCode).
		First(&credit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &credit, nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID uint) ([]models.Credit, error) {
	var credits []models.Credit
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&credits).Error
	if err != nil {
		return nil, err
	}
	return credits, nil
}
