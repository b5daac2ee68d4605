package services

// DomainError is a business-rule failure with a stable machine-readable code.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

var (
	ErrCustomerNotFound       = NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
	ErrCreditNotFound         = NewDomainError("CREDIT_NOT_FOUND", "Credit not found")
	ErrInvalidInstallmentDate = NewDomainError("INVALID_INSTALLMENT_DATE", "Date of the first installment is invalid")
	ErrInvalidInstallments    = NewDomainError("INVALID_INSTALLMENTS", "Number of installments must be between 3 and 48")
	ErrOwnershipMismatch      = NewDomainError("OWNERSHIP_MISMATCH", "Credit does not belong to the given customer")
	ErrInvalidCredentials     = NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrStorageConflict        = NewDomainError("STORAGE_CONFLICT", "Resource already exists")
)
