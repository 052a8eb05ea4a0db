package models_test

import (
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreditDerivedFieldsArePersisted() {
	var c models.Credit
	c.Apply(finance.InstallmentCredit{
		Name:              "Carla",
		CreditOption:      " Pessoal ",
		InitialAmount:     decimal.NewFromInt(1000),
		InstallmentCount:  5,
		InstallmentAmount: decimal.NewFromInt(220),
		StartDate:         "2024-01-31",
	})

	err := models.DB.Create(&c).Error
	suite.Require().Nil(err)

	var stored models.Credit
	err = models.DB.First(&stored, "id = ?", c.ID).Error
	suite.Require().Nil(err)

	assert.Equal(suite.T(), "Pessoal", stored.CreditOption)
	assert.True(suite.T(), stored.TotalAmount.Equal(decimal.NewFromInt(1100)), stored.TotalAmount.String())
	assert.True(suite.T(), stored.InterestAmount.Equal(decimal.NewFromInt(100)), stored.InterestAmount.String())
	assert.True(suite.T(), stored.InterestRate.Equal(decimal.NewFromInt(10)), stored.InterestRate.String())
	assert.Equal(suite.T(), "2024-06-30", stored.EndDate)
}

func (suite *TestSuiteStandard) TestCreditValidation() {
	tests := []struct {
		name   string
		credit models.Credit
		err    error
	}{
		{"Blank name", models.Credit{}, models.ErrNameRequired},
		{"Negative installment count", models.Credit{Name: "a", InstallmentCount: -1}, models.ErrInstallmentCountNegative},
		{"Negative installment amount", models.Credit{Name: "a", InstallmentAmount: decimal.NewFromInt(-1)}, models.ErrInstallmentAmountNegative},
		{"Invalid start date", models.Credit{Name: "a", StartDate: "tomorrow"}, models.ErrInvalidDate},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.credit).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}
