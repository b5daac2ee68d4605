package controllers

import (
	"net/http"
	"strconv"

	"creditapp-backend/models"
	"creditapp-backend/services"
	"creditapp-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateCustomerInput defines the expected JSON structure for registering a customer
type CreateCustomerInput struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	CPF       string          `json:"cpf" binding:"required"`
	Income    decimal.Decimal `json:"income" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required"`
	ZipCode   string          `json:"zipCode" binding:"required"`
	Street    string          `json:"street" binding:"required"`
}

// UpdateCustomerInput defines the expected JSON structure for patching a
// customer; only these fields are mutable
type UpdateCustomerInput struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Income    *decimal.Decimal `json:"income"`
	ZipCode   *string          `json:"zipCode"`
	Street    *string          `json:"street"`
}

// CustomerView is the public projection of a customer
type CustomerView struct {
	ID        uint            `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Income    decimal.Decimal `json:"income"`
	Email     string          `json:"email"`
	ZipCode   string          `json:"zipCode"`
	Street    string          `json:"street"`
}

func NewCustomerView(customer *models.Customer) CustomerView {
	return CustomerView{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		CPF:       customer.CPF,
		Income:    customer.Income,
		Email:     customer.Email,
		ZipCode:   customer.Address.ZipCode,
		Street:    customer.Address.Street,
	}
}

type CustomerController struct {
	customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{customers: customers}
}

// Create registers a new customer
func (ctl *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateCPF(input.CPF) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid CPF")
		return
	}

	customer := models.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CPF:       input.CPF,
		Income:    input.Income,
		Email:     input.Email,
		Password:  input.Password,
		Address: models.Address{
			ZipCode: input.ZipCode,
			Street:  input.Street,
		},
	}

	if err := ctl.customers.Register(c.Request.Context(), &customer); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCustomerView(&customer))
}

// Get retrieves a customer by id
func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := ctl.customers.FindByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCustomerView(customer))
}

// Update patches the mutable fields of a customer
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctl.customers.Update(c.Request.Context(), id, services.CustomerUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Income:    input.Income,
		ZipCode:   input.ZipCode,
		Street:    input.Street,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCustomerView(customer))
}

// Delete removes a customer by id
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.customers.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return 0, false
	}
	return uint(id), true
}
