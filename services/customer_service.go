package services

import (
	"context"

	"creditapp-backend/models"
	"creditapp-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CustomerUpdate carries the fields a customer may change after registration.
// Identity, CPF, email and password are not reachable through this path.
type CustomerUpdate struct {
	FirstName *string
	LastName  *string
	Income    *decimal.Decimal
	ZipCode   *string
	Street    *string
}

type CustomerService struct {
	customers CustomerRepository
	log       *logrus.Logger
}

func NewCustomerService(customers CustomerRepository, log *logrus.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		log:       log,
	}
}

// Register persists a new customer. Duplicate CPF or email surfaces as
// ErrStorageConflict from the repository.
func (s *CustomerService) Register(ctx context.Context, customer *models.Customer) error {
	if err := s.customers.Save(ctx, customer); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"customer_id": customer.ID,
		"email":       customer.Email,
	}).Info("customer registered")
	return nil
}

// FindByID resolves a customer id or fails with ErrCustomerNotFound.
func (s *CustomerService) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// Authenticate checks email and password for the login endpoint. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *CustomerService) Authenticate(ctx context.Context, email, password string) (*models.Customer, error) {
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil || !utils.CheckPasswordHash(password, customer.Password) {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}

// Update loads the current record, applies the provided mutable fields and
// persists the result.
func (s *CustomerService) Update(ctx context.Context, id uint, update CustomerUpdate) (*models.Customer, error) {
	customer, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		customer.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		customer.LastName = *update.LastName
	}
	if update.Income != nil {
		customer.Income = *update.Income
	}
	if update.ZipCode != nil {
		customer.Address.ZipCode = *update.ZipCode
	}
	if update.Street != nil {
		customer.Address.Street = *update.Street
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete resolves the customer first, so deleting an unknown id is an error
// rather than a silent no-op.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	customer, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, customer.ID); err != nil {
		return err
	}
	s.log.WithField("customer_id", customer.ID).Info("customer deleted")
	return nil
}
