package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrNameRequired              = errors.New("the name must not be empty")
	ErrInstitutionRequired       = errors.New("the institution must not be empty")
	ErrInvalidDate               = errors.New("dates must be in YYYY-MM-DD format")
	ErrInstallmentCountNegative  = errors.New("the installment count must not be negative")
	ErrInstallmentAmountNegative = errors.New("the installment amount must not be negative")
)
