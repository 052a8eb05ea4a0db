package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestInvestmentDerivedFields() {
	i := models.Investment{
		Institution:   "Nubank ",
		InitialAmount: decimal.NewFromInt(1000),
		TotalAmount:   decimal.NewFromInt(1150),
		Period:        "2024-05-01",
	}

	err := models.DB.Create(&i).Error
	suite.Require().Nil(err)

	assert.Equal(suite.T(), "Nubank", i.Institution)
	assert.True(suite.T(), i.InterestAmount.Equal(decimal.NewFromInt(150)))
	assert.True(suite.T(), i.InterestRate.Equal(decimal.NewFromInt(15)))
}

func (suite *TestSuiteStandard) TestInvestmentZeroInitial() {
	i := models.Investment{Institution: "Inter", TotalAmount: decimal.NewFromInt(10)}

	err := models.DB.Create(&i).Error
	suite.Require().Nil(err)
	assert.True(suite.T(), i.InterestRate.IsZero())
}

func (suite *TestSuiteStandard) TestInvestmentInstitutionRequired() {
	err := models.DB.Create(&models.Investment{}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInstitutionRequired)
}
