package models

import (
	"strings"

	"github.com/fintrack/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseControl is a stored monthly budget.
type ExpenseControl struct {
	DefaultModel
	Revenue           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MandatoryExpenses decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	VariableExpenses  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Balance           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Period            string          `gorm:"index"`
}

func (e ExpenseControl) Record() finance.ExpenseControlEntry {
	return finance.ExpenseControlEntry{
		Revenue:           e.Revenue,
		MandatoryExpenses: e.MandatoryExpenses,
		VariableExpenses:  e.VariableExpenses,
		Balance:           e.Balance,
		Period:            e.Period,
	}
}

// Apply overwrites all fields with the recomputed record.
func (e *ExpenseControl) Apply(r finance.ExpenseControlEntry) {
	r = r.Recompute()

	e.Revenue = r.Revenue
	e.MandatoryExpenses = r.MandatoryExpenses
	e.VariableExpenses = r.VariableExpenses
	e.Balance = r.Balance
	e.Period = r.Period
}

func (e *ExpenseControl) BeforeSave(_ *gorm.DB) error {
	e.Period = strings.TrimSpace(e.Period)

	if !finance.ValidDate(e.Period) {
		return ErrInvalidDate
	}

	e.Apply(e.Record())
	return nil
}
