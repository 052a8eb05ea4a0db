package models_test

import (
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseControlBalance() {
	var e models.ExpenseControl
	e.Apply(finance.ExpenseControlEntry{
		Revenue:           decimal.NewFromInt(6000),
		MandatoryExpenses: decimal.NewFromInt(3500),
		VariableExpenses:  decimal.NewFromInt(1200),
		Period:            "2024-05-01",
	})
	assert.True(suite.T(), e.Balance.Equal(decimal.NewFromInt(1300)))

	err := models.DB.Create(&e).Error
	suite.Require().Nil(err)

	e.VariableExpenses = decimal.NewFromInt(2000)
	err = models.DB.Save(&e).Error
	suite.Require().Nil(err)

	var stored models.ExpenseControl
	err = models.DB.First(&stored, "id = ?", e.ID).Error
	suite.Require().Nil(err)
	assert.True(suite.T(), stored.Balance.Equal(decimal.NewFromInt(500)), stored.Balance.String())
}
