package models

import (
	"creditapp-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Address is embedded into Customer and carries no identity of its own.
type Address struct {
	ZipCode string `gorm:"not null" json:"zipCode"`
	Street  string `gorm:"not null" json:"street"`
}

type Customer struct {
	FirstName string          `gorm:"not null" json:"firstName"`
	LastName  string          `gorm:"not null" json:"lastName"`
	CPF       string          `gorm:"uniqueIndex;not null" json:"cpf"`
	Income    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"income"`
	Email     string          `gorm:"uniqueIndex;not null" json:"email"`
	Password  string          `gorm:"not null" json:"-"`
	Address   Address         `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Credits []Credit `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model
}

// Hash the password before the first insert
func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(c.Password)
	if err != nil {
		return err
	}
	c.Password = hashed
	return nil
}
