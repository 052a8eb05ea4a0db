package models

import (
	"strings"

	"github.com/fintrack/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashFlow is a stored cash flow entry. The balance is kept as entered.
type CashFlow struct {
	DefaultModel
	InflowAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	OutflowAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BalanceAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period        string          `gorm:"index"`
}

func (c CashFlow) Record() finance.CashFlowEntry {
	return finance.CashFlowEntry{
		InflowAmount:  c.InflowAmount,
		OutflowAmount: c.OutflowAmount,
		BalanceAmount: c.BalanceAmount,
		Period:        c.Period,
	}
}

func (c *CashFlow) Apply(r finance.CashFlowEntry) {
	r = r.Recompute()

	c.InflowAmount = r.InflowAmount
	c.OutflowAmount = r.OutflowAmount
	c.BalanceAmount = r.BalanceAmount
	c.Period = r.Period
}

func (c *CashFlow) BeforeSave(_ *gorm.DB) error {
	c.Period = strings.TrimSpace(c.Period)

	if !finance.ValidDate(c.Period) {
		return ErrInvalidDate
	}

	return nil
}
