package models_test

import (
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestClient(c models.Client) models.Client {
	if c.Name == "" {
		c.Name = "Test client"
	}

	err := models.DB.Create(&c).Error
	suite.Require().Nil(err, "client could not be created")

	return c
}

func (suite *TestSuiteStandard) TestClientDerivedFieldsArePersisted() {
	c := suite.createTestClient(models.Client{
		Name:           "  Ana Souza \t",
		InitialAmount:  decimal.NewFromInt(1000),
		InterestAmount: decimal.NewFromInt(100),
		StartDate:      "2024-01-31",
	})

	var stored models.Client
	err := models.DB.First(&stored, "id = ?", c.ID).Error
	suite.Require().Nil(err)

	assert.Equal(suite.T(), "Ana Souza", stored.Name)
	assert.True(suite.T(), stored.TotalAmount.Equal(decimal.NewFromInt(1100)), stored.TotalAmount.String())
	assert.Equal(suite.T(), "2024-02-29", stored.EndDate)
}

func (suite *TestSuiteStandard) TestClientRecomputesOnSave() {
	c := suite.createTestClient(models.Client{InitialAmount: decimal.NewFromInt(500)})

	c.InterestAmount = decimal.NewFromInt(50)
	// A stale total is overwritten
	c.TotalAmount = decimal.NewFromInt(1)

	err := models.DB.Save(&c).Error
	suite.Require().Nil(err)
	assert.True(suite.T(), c.TotalAmount.Equal(decimal.NewFromInt(550)), c.TotalAmount.String())
}

func (suite *TestSuiteStandard) TestClientValidation() {
	tests := []struct {
		name   string
		client models.Client
		err    error
	}{
		{"Blank name", models.Client{Name: "   "}, models.ErrNameRequired},
		{"Invalid start date", models.Client{Name: "Ana", StartDate: "31/01/2024"}, models.ErrInvalidDate},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.client).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestClientRecordRoundTrip() {
	r := finance.MonthlyClient{
		Name:           "Bruno",
		InitialAmount:  decimal.NewFromInt(200),
		InterestAmount: decimal.NewFromInt(20),
		StartDate:      "2024-05-15",
		Phone:          "11987654321",
	}

	var c models.Client
	c.Apply(r)
	assert.Equal(suite.T(), r.Recompute(), c.Record())
}
