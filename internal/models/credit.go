package models

import (
	"strings"

	"github.com/fintrack/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Credit is a stored installment credit.
type Credit struct {
	DefaultModel
	Name              string
	CreditOption      string
	InitialAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InstallmentCount  int
	InstallmentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestRate      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate         string
	EndDate           string `gorm:"index"`
	Phone             string
}

func (c Credit) Record() finance.InstallmentCredit {
	return finance.InstallmentCredit{
		Name:              c.Name,
		CreditOption:      c.CreditOption,
		InitialAmount:     c.InitialAmount,
		InstallmentCount:  c.InstallmentCount,
		InstallmentAmount: c.InstallmentAmount,
		InterestAmount:    c.InterestAmount,
		TotalAmount:       c.TotalAmount,
		InterestRate:      c.InterestRate,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Phone:             c.Phone,
	}
}

// Apply overwrites all fields with the recomputed record.
func (c *Credit) Apply(r finance.InstallmentCredit) {
	r = r.Recompute()

	c.Name = r.Name
	c.CreditOption = r.CreditOption
	c.InitialAmount = r.InitialAmount
	c.InstallmentCount = r.InstallmentCount
	c.InstallmentAmount = r.InstallmentAmount
	c.InterestAmount = r.InterestAmount
	c.TotalAmount = r.TotalAmount
	c.InterestRate = r.InterestRate
	c.StartDate = r.StartDate
	c.EndDate = r.EndDate
	c.Phone = r.Phone
}

func (c *Credit) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.CreditOption = strings.TrimSpace(c.CreditOption)
	c.Phone = strings.TrimSpace(c.Phone)
	c.StartDate = strings.TrimSpace(c.StartDate)

	if c.Name == "" {
		return ErrNameRequired
	}

	if c.InstallmentCount < 0 {
		return ErrInstallmentCountNegative
	}

	if c.InstallmentAmount.IsNegative() {
		return ErrInstallmentAmountNegative
	}

	if !finance.ValidDate(c.StartDate) {
		return ErrInvalidDate
	}

	c.Apply(c.Record())
	return nil
}
