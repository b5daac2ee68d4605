package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditStatus represents the lifecycle state of a credit. Only IN_PROGRESS is
// assigned by this service; the other states are driven externally.
type CreditStatus string

const (
	CreditStatusInProgress CreditStatus = "IN_PROGRESS"
	CreditStatusApproved   CreditStatus = "APPROVED"
	CreditStatusRejected   CreditStatus = "REJECTED"
)

type Credit struct {
	// CreditCode is the external identifier; the row id never leaves the API.
	CreditCode           uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"creditCode"`
	CreditValue          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"creditValue"`
	DayFirstInstallment  time.Time       `gorm:"type:date;not null" json:"dayFirstInstallment"`
	NumberOfInstallments int             `gorm:"not null" json:"numberOfInstallments"`
	Status               CreditStatus    `gorm:"type:varchar(20);not null;default:'IN_PROGRESS'" json:"status"`

	CustomerID uint     `gorm:"index;not null" json:"customerId"`
	Customer   Customer `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model
}
