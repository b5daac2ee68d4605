package controllers

import (
	"net/http"

	"creditapp-backend/config"
	"creditapp-backend/services"
	"creditapp-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	customers *services.CustomerService
	cfg       *config.Config
}

func NewAuthController(customers *services.CustomerService, cfg *config.Config) *AuthController {
	return &AuthController{customers: customers, cfg: cfg}
}

// Login exchanges customer credentials for a JWT
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctl.customers.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(customer.ID, ctl.cfg.JWTSecret, ctl.cfg.JWTExpiryHours)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
