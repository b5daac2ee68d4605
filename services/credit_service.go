package services

import (
	"context"
	"time"

	"creditapp-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	minInstallments = 3
	maxInstallments = 48

	// A first installment may be at most this many days out.
	maxFirstInstallmentDays = 90
)

// CreditProposal is the unvalidated, unpersisted candidate for a new credit.
type CreditProposal struct {
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	CustomerID           uint
}

type CreditService struct {
	credits   CreditRepository
	customers *CustomerService
	log       *logrus.Logger
	now       func() time.Time
}

func NewCreditService(credits CreditRepository, customers *CustomerService, log *logrus.Logger) *CreditService {
	return &CreditService{
		credits:   credits,
		customers: customers,
		log:       log,
		now:       time.Now,
	}
}

// Issue validates a proposal, binds it to its owning customer and persists it.
// Nothing is written on any failure path. Two identical proposals produce two
// credits with distinct codes.
func (s *CreditService) Issue(ctx context.Context, proposal CreditProposal) (*models.Credit, error) {
	customer, err := s.customers.FindByID(ctx, proposal.CustomerID)
	if err != nil {
		return nil, err
	}

	// Both rules below are re-checked here regardless of what the request
	// layer already validated.
	if proposal.NumberOfInstallments < minInstallments || proposal.NumberOfInstallments > maxInstallments {
		return nil, ErrInvalidInstallments
	}
	if truncateToDay(proposal.DayFirstInstallment).After(s.installmentCeiling()) {
		return nil, ErrInvalidInstallmentDate
	}

	credit := &models.Credit{
		CreditCode:           uuid.New(),
		CreditValue:          proposal.CreditValue,
		DayFirstInstallment:  proposal.DayFirstInstallment,
		NumberOfInstallments: proposal.NumberOfInstallments,
		Status:               models.CreditStatusInProgress,
		CustomerID:           customer.ID,
	}

	// Customer resolution and this insert are separate round trips; an owner
	// deleted in between is an accepted race.
	if err := s.credits.Save(ctx, credit); err != nil {
		return nil, err
	}
	credit.Customer = *customer

	s.log.WithFields(logrus.Fields{
		"credit_code": credit.CreditCode,
		"customer_id": credit.CustomerID,
		"value":       credit.CreditValue,
	}).Info("credit issued")
	return credit, nil
}

// FindByCreditCode returns the credit only when the claimed customer owns it.
// An existing code claimed by the wrong customer fails with
// ErrOwnershipMismatch, kept distinct from ErrCreditNotFound so probing is
// auditable.
func (s *CreditService) FindByCreditCode(ctx context.Context, customerID uint, creditCode uuid.UUID) (*models.Credit, error) {
	credit, err := s.credits.FindByCreditCode(ctx, creditCode)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}
	if credit.CustomerID != customerID {
		s.log.WithFields(logrus.Fields{
			"credit_code": creditCode,
			"owner_id":    credit.CustomerID,
			"claimed_id":  customerID,
		}).Warn("credit lookup rejected: ownership mismatch")
		return nil, ErrOwnershipMismatch
	}
	return credit, nil
}

// FindAllByCustomer lists the credits owned by customerID. Unknown or
// credit-less ids yield an empty list, never an error.
func (s *CreditService) FindAllByCustomer(ctx context.Context, customerID uint) ([]models.Credit, error) {
	return s.credits.FindAllByCustomerID(ctx, customerID)
}

func (s *CreditService) installmentCeiling() time.Time {
	return truncateToDay(s.now()).AddDate(0, 0, maxFirstInstallmentDays)
}

// The ceiling has day granularity: a first installment exactly 90 days out is
// accepted, 91 days out is not.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
