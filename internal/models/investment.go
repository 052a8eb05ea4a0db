package models

import (
	"strings"

	"github.com/fintrack/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment is a stored investment entry.
type Investment struct {
	DefaultModel
	Institution      string
	InvestmentOption string
	InitialAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalAmount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestRate     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period           string          `gorm:"index"`
}

func (i Investment) Record() finance.InvestmentEntry {
	return finance.InvestmentEntry{
		Institution:      i.Institution,
		InvestmentOption: i.InvestmentOption,
		InitialAmount:    i.InitialAmount,
		InterestAmount:   i.InterestAmount,
		TotalAmount:      i.TotalAmount,
		InterestRate:     i.InterestRate,
		Period:           i.Period,
	}
}

// Apply overwrites all fields with the recomputed record.
func (i *Investment) Apply(r finance.InvestmentEntry) {
	r = r.Recompute()

	i.Institution = r.Institution
	i.InvestmentOption = r.InvestmentOption
	i.InitialAmount = r.InitialAmount
	i.InterestAmount = r.InterestAmount
	i.TotalAmount = r.TotalAmount
	i.InterestRate = r.InterestRate
	i.Period = r.Period
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	i.Institution = strings.TrimSpace(i.Institution)
	i.InvestmentOption = strings.TrimSpace(i.InvestmentOption)
	i.Period = strings.TrimSpace(i.Period)

	if i.Institution == "" {
		return ErrInstitutionRequired
	}

	if !finance.ValidDate(i.Period) {
		return ErrInvalidDate
	}

	i.Apply(i.Record())
	return nil
}
