package controllers

import (
	"net/http"
	"strconv"
	"time"

	"creditapp-backend/models"
	"creditapp-backend/services"
	"creditapp-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CreateCreditInput defines the expected JSON structure for a credit proposal
type CreateCreditInput struct {
	CreditValue          decimal.Decimal `json:"creditValue" binding:"required"`
	DayFirstInstallment  string          `json:"dayFirstInstallment" binding:"required"`
	NumberOfInstallments int             `json:"numberOfInstallments" binding:"required,min=3,max=48"`
	CustomerID           uint            `json:"customerId" binding:"required"`
}

// CreditView is the full projection returned for a single credit, including
// the owner attributes the client displays
type CreditView struct {
	CreditCode           uuid.UUID           `json:"creditCode"`
	CreditValue          decimal.Decimal     `json:"creditValue"`
	DayFirstInstallment  string              `json:"dayFirstInstallment"`
	NumberOfInstallments int                 `json:"numberOfInstallments"`
	Status               models.CreditStatus `json:"status"`
	EmailCustomer        string              `json:"emailCustomer"`
	IncomeCustomer       decimal.Decimal     `json:"incomeCustomer"`
}

func NewCreditView(credit *models.Credit) CreditView {
	return CreditView{
		CreditCode:           credit.CreditCode,
		CreditValue:          credit.CreditValue,
		DayFirstInstallment:  credit.DayFirstInstallment.Format(dateLayout),
		NumberOfInstallments: credit.NumberOfInstallments,
		Status:               credit.Status,
		EmailCustomer:        credit.Customer.Email,
		IncomeCustomer:       credit.Customer.Income,
	}
}

// CreditViewList is the summary projection used when listing by customer
type CreditViewList struct {
	CreditCode           uuid.UUID       `json:"creditCode"`
	CreditValue          decimal.Decimal `json:"creditValue"`
	NumberOfInstallments int             `json:"numberOfInstallments"`
}

type CreditController struct {
	credits *services.CreditService
}

func NewCreditController(credits *services.CreditService) *CreditController {
	return &CreditController{credits: credits}
}

// Create issues a new credit for a customer
func (ctl *CreditController) Create(c *gin.Context) {
	var input CreateCreditInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	day, err := time.Parse(dateLayout, input.DayFirstInstallment)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dayFirstInstallment, expected YYYY-MM-DD")
		return
	}
	if !day.After(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "dayFirstInstallment must be in the future")
		return
	}

	credit, err := ctl.credits.Issue(c.Request.Context(), services.CreditProposal{
		CreditValue:          input.CreditValue,
		DayFirstInstallment:  day,
		NumberOfInstallments: input.NumberOfInstallments,
		CustomerID:           input.CustomerID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCreditView(credit))
}

// List returns the credit summaries owned by the given customer. Unknown
// customers get an empty list.
func (ctl *CreditController) List(c *gin.Context) {
	customerID, ok := parseCustomerIDQuery(c)
	if !ok {
		return
	}

	credits, err := ctl.credits.FindAllByCustomer(c.Request.Context(), customerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	views := make([]CreditViewList, 0, len(credits))
	for _, credit := range credits {
		views = append(views, CreditViewList{
			CreditCode:           credit.CreditCode,
			CreditValue:          credit.CreditValue,
			NumberOfInstallments: credit.NumberOfInstallments,
		})
	}

	c.JSON(http.StatusOK, views)
}

// GetByCode retrieves a single credit by its external code, for its owner only
func (ctl *CreditController) GetByCode(c *gin.Context) {
	customerID, ok := parseCustomerIDQuery(c)
	if !ok {
		return
	}

	creditCode, err := uuid.Parse(c.Param("creditCode"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid credit code format")
		return
	}

	credit, err := ctl.credits.FindByCreditCode(c.Request.Context(), customerID, creditCode)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCreditView(credit))
}

func parseCustomerIDQuery(c *gin.Context) (uint, bool) {
	customerID, err := strconv.ParseUint(c.Query("customerId"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing customerId")
		return 0, false
	}
	return uint(customerID), true
}
