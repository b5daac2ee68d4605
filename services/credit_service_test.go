package services

import (
	"context"
	"io"
	"testing"
	"time"

	"creditapp-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCustomerRepository struct {
	customers map[uint]models.Customer
	nextID    uint
	deleted   []uint
	saveErr   error
}

func newStubCustomerRepository() *stubCustomerRepository {
	return &stubCustomerRepository{customers: make(map[uint]models.Customer)}
}

func (s *stubCustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if customer.ID == 0 {
		s.nextID++
		customer.ID = s.nextID
	}
	s.customers[customer.ID] = *customer
	return nil
}

func (s *stubCustomerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	customer, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (s *stubCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for _, customer := range s.customers {
		if customer.Email == email {
			c := customer
			return &c, nil
		}
	}
	return nil, nil
}

func (s *stubCustomerRepository) Delete(ctx context.Context, id uint) error {
	delete(s.customers, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubCreditRepository struct {
	credits []models.Credit
	nextID  uint
	saveErr error
}

func (s *stubCreditRepository) Save(ctx context.Context, credit *models.Credit) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.nextID++
	credit.ID = s.nextID
	s.credits = append(s.credits, *credit)
	return nil
}

func (s *stubCreditRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*models.Credit, error) {
	for i := range s.credits {
		if s.credits[i].CreditCode == creditCode {
			credit := s.credits[i]
			return &credit, nil
		}
	}
	return nil, nil
}

func (s *stubCreditRepository) FindAllByCustomerID(ctx context.Context, customerID uint) ([]models.Credit, error) {
	credits := make([]models.Credit, 0)
	for _, credit := range s.credits {
		if credit.CustomerID == customerID {
			credits = append(credits, credit)
		}
	}
	return credits, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fixedNow keeps the 90-day boundary deterministic across a test run.
var fixedNow = time.Date(2026, time.May, 14, 10, 30, 0, 0, time.UTC)

func newCreditServiceForTest(t *testing.T) (*CreditService, *stubCreditRepository, *stubCustomerRepository) {
	t.Helper()
	customerRepo := newStubCustomerRepository()
	creditRepo := &stubCreditRepository{}
	customerService := NewCustomerService(customerRepo, testLogger())
	creditService := NewCreditService(creditRepo, customerService, testLogger())
	creditService.now = func() time.Time { return fixedNow }
	return creditService, creditRepo, customerRepo
}

func seedCustomer(t *testing.T, repo *stubCustomerRepository) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		FirstName: "Camila",
		LastName:  "Cavalcante",
		CPF:       "52998224725",
		Income:    decimal.NewFromInt(5000),
		Email:     "camila@example.com",
		Password:  "hashed",
		Address:   models.Address{ZipCode: "45600-000", Street: "Rua da Cassi, 312"},
	}
	require.NoError(t, repo.Save(context.Background(), customer))
	return customer
}

func validProposal(customerID uint) CreditProposal {
	return CreditProposal{
		CreditValue:          decimal.NewFromFloat(2000.00),
		DayFirstInstallment:  fixedNow.AddDate(0, 0, 60),
		NumberOfInstallments: 10,
		CustomerID:           customerID,
	}
}

func TestIssueCreatesCreditBoundToCustomer(t *testing.T) {
	svc, creditRepo, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	credit, err := svc.Issue(context.Background(), validProposal(customer.ID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, credit.CreditCode)
	assert.Equal(t, models.CreditStatusInProgress, credit.Status)
	assert.Equal(t, customer.ID, credit.CustomerID)
	assert.Equal(t, customer.Email, credit.Customer.Email)
	assert.True(t, credit.CreditValue.Equal(decimal.NewFromFloat(2000.00)))
	assert.Equal(t, 10, credit.NumberOfInstallments)
	assert.Len(t, creditRepo.credits, 1)
}

func TestIssueUnknownCustomerWritesNothing(t *testing.T) {
	svc, creditRepo, _ := newCreditServiceForTest(t)

	_, err := svc.Issue(context.Background(), validProposal(999))

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Empty(t, creditRepo.credits)
}

func TestIssueFirstInstallmentDateBoundary(t *testing.T) {
	svc, creditRepo, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	atCeiling := validProposal(customer.ID)
	atCeiling.DayFirstInstallment = fixedNow.AddDate(0, 0, 90)
	_, err := svc.Issue(context.Background(), atCeiling)
	assert.NoError(t, err, "exactly 90 days out must be accepted")

	pastCeiling := validProposal(customer.ID)
	pastCeiling.DayFirstInstallment = fixedNow.AddDate(0, 0, 91)
	_, err = svc.Issue(context.Background(), pastCeiling)
	assert.ErrorIs(t, err, ErrInvalidInstallmentDate)
	assert.Len(t, creditRepo.credits, 1, "the rejected proposal must not be written")
}

func TestIssueFarFutureDateRejected(t *testing.T) {
	svc, creditRepo, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	proposal := validProposal(customer.ID)
	proposal.DayFirstInstallment = fixedNow.AddDate(0, 0, 200)

	_, err := svc.Issue(context.Background(), proposal)

	assert.ErrorIs(t, err, ErrInvalidInstallmentDate)
	assert.Empty(t, creditRepo.credits)
}

func TestIssueInstallmentBounds(t *testing.T) {
	svc, creditRepo, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	for _, installments := range []int{0, 2, 49} {
		proposal := validProposal(customer.ID)
		proposal.NumberOfInstallments = installments
		_, err := svc.Issue(context.Background(), proposal)
		assert.ErrorIs(t, err, ErrInvalidInstallments, "installments=%d", installments)
	}
	for _, installments := range []int{3, 48} {
		proposal := validProposal(customer.ID)
		proposal.NumberOfInstallments = installments
		_, err := svc.Issue(context.Background(), proposal)
		assert.NoError(t, err, "installments=%d", installments)
	}
	assert.Len(t, creditRepo.credits, 2)
}

func TestIssueGeneratesDistinctCodes(t *testing.T) {
	svc, _, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	const issued = 10000
	codes := make(map[uuid.UUID]struct{}, issued)
	for i := 0; i < issued; i++ {
		credit, err := svc.Issue(context.Background(), validProposal(customer.ID))
		require.NoError(t, err)
		codes[credit.CreditCode] = struct{}{}
	}

	assert.Len(t, codes, issued, "credit codes must never repeat")
}

func TestFindByCreditCodeReturnsOwnedCredit(t *testing.T) {
	svc, _, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	issued, err := svc.Issue(context.Background(), validProposal(customer.ID))
	require.NoError(t, err)

	found, err := svc.FindByCreditCode(context.Background(), customer.ID, issued.CreditCode)
	require.NoError(t, err)
	assert.Equal(t, issued.CreditCode, found.CreditCode)
	assert.Equal(t, customer.ID, found.CustomerID)
}

func TestFindByCreditCodeOwnershipMismatch(t *testing.T) {
	svc, _, customerRepo := newCreditServiceForTest(t)
	owner := seedCustomer(t, customerRepo)
	other := &models.Customer{CPF: "16899535009", Email: "other@example.com", Password: "hashed"}
	require.NoError(t, customerRepo.Save(context.Background(), other))

	issued, err := svc.Issue(context.Background(), validProposal(owner.ID))
	require.NoError(t, err)

	found, err := svc.FindByCreditCode(context.Background(), other.ID, issued.CreditCode)

	assert.ErrorIs(t, err, ErrOwnershipMismatch)
	assert.Nil(t, found, "no credit data may leak on a mismatch")
}

func TestFindByCreditCodeUnknownCode(t *testing.T) {
	svc, _, customerRepo := newCreditServiceForTest(t)
	customer := seedCustomer(t, customerRepo)

	_, err := svc.FindByCreditCode(context.Background(), customer.ID, uuid.New())

	assert.ErrorIs(t, err, ErrCreditNotFound)
}

func TestFindAllByCustomerUnknownIDIsEmpty(t *testing.T) {
	svc, _, _ := newCreditServiceForTest(t)

	credits, err := svc.FindAllByCustomer(context.Background(), 424242)

	require.NoError(t, err)
	assert.Empty(t, credits)
}

func TestFindAllByCustomerReturnsOnlyOwnCredits(t *testing.T) {
	svc, _, customerRepo := newCreditServiceForTest(t)
	owner := seedCustomer(t, customerRepo)
	other := &models.Customer{CPF: "16899535009", Email: "other@example.com", Password: "hashed"}
	require.NoError(t, customerRepo.Save(context.Background(), other))

	_, err := svc.Issue(context.Background(), validProposal(owner.ID))
	require.NoError(t, err)
	_, err = svc.Issue(context.Background(), validProposal(owner.ID))
	require.NoError(t, err)
	_, err = svc.Issue(context.Background(), validProposal(other.ID))
	require.NoError(t, err)

	credits, err := svc.FindAllByCustomer(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, credits, 2)
	for _, credit := range credits {
		assert.Equal(t, owner.ID, credit.CustomerID)
	}
}
