package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func getTestDashboard(t *testing.T, query string) v1.Dashboard {
	r := test.Request(t, http.MethodGet, "http://example.com/v1/dashboard?"+query, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(t, &r, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) createDashboardData() {
	t := suite.T()

	_ = createTestClient(t, finance.MonthlyClient{Name: "Ana Souza", InitialAmount: decimal.NewFromInt(1000), InterestAmount: decimal.NewFromInt(100), StartDate: "2024-04-15"})
	_ = createTestClient(t, finance.MonthlyClient{Name: "Bruno Lima", InitialAmount: decimal.NewFromInt(500), InterestAmount: decimal.NewFromInt(50), StartDate: "2024-05-10"})

	_ = createTestCredit(t, finance.InstallmentCredit{
		Name:              "Carla Dias",
		InitialAmount:     decimal.NewFromInt(1000),
		InstallmentCount:  5,
		InstallmentAmount: decimal.NewFromInt(220),
		StartDate:         "2024-01-10",
	})

	_ = createTestCashFlow(t, finance.CashFlowEntry{InflowAmount: decimal.NewFromInt(5000), OutflowAmount: decimal.NewFromInt(3200), BalanceAmount: decimal.NewFromInt(1800), Period: "2024-05-01"})
	_ = createTestCashFlow(t, finance.CashFlowEntry{InflowAmount: decimal.NewFromInt(4000), OutflowAmount: decimal.NewFromInt(4500), BalanceAmount: decimal.NewFromInt(-500), Period: "2024-06-01"})

	_ = createTestExpenseControl(t, finance.ExpenseControlEntry{Revenue: decimal.NewFromInt(6000), MandatoryExpenses: decimal.NewFromInt(3500), VariableExpenses: decimal.NewFromInt(1200), Period: "2024-05-01"})

	_ = createTestInvestment(t, finance.InvestmentEntry{Institution: "Nubank", InvestmentOption: "CDI/CDB", InitialAmount: decimal.NewFromInt(1000), TotalAmount: decimal.NewFromInt(1150), Period: "2024-05-01"})
	_ = createTestInvestment(t, finance.InvestmentEntry{Institution: "XP", InvestmentOption: "Tesouro Direto", InitialAmount: decimal.NewFromInt(2000), TotalAmount: decimal.NewFromInt(2100), Period: "2024-05-10"})
	_ = createTestInvestment(t, finance.InvestmentEntry{Institution: "Inter", InitialAmount: decimal.NewFromInt(300), TotalAmount: decimal.NewFromInt(330), Period: "2024-06-01"})
	_ = createTestInvestment(t, finance.InvestmentEntry{Institution: "C6", InvestmentOption: "CDI/CDB", Period: "2024-06-01"})
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	d := getTestDashboard(suite.T(), "")

	assert.Equal(suite.T(), finance.AllMonths, d.Period)
	assert.Equal(suite.T(), finance.Periods(), d.Periods)
	assert.Equal(suite.T(), 0, d.Clients.Count)
	assertDecimal(suite.T(), "0", d.Clients.Total)
	assertDecimal(suite.T(), "0", d.Investments.Rate)
	assert.Empty(suite.T(), d.InvestmentsByOption)
	assert.Empty(suite.T(), d.CashFlowSeries)
}

func (suite *TestSuiteStandard) TestDashboardAllMonths() {
	suite.createDashboardData()
	d := getTestDashboard(suite.T(), "period=Todos")

	assert.Equal(suite.T(), finance.AllMonths, d.Period)

	assert.Equal(suite.T(), 2, d.Clients.Count)
	assertDecimal(suite.T(), "1500", d.Clients.Initial)
	assertDecimal(suite.T(), "1650", d.Clients.Total)

	assert.Equal(suite.T(), 1, d.Credits.Count)
	assertDecimal(suite.T(), "5", d.Credits.InstallmentCount)
	assertDecimal(suite.T(), "1100", d.Credits.Total)

	assertDecimal(suite.T(), "9000", d.CashFlow.Inflow)
	assertDecimal(suite.T(), "7700", d.CashFlow.Outflow)
	assertDecimal(suite.T(), "1300", d.CashFlow.Balance)

	assertDecimal(suite.T(), "6000", d.ExpenseControl.Revenue)
	assertDecimal(suite.T(), "1300", d.ExpenseControl.Balance)

	assert.Equal(suite.T(), 4, d.Investments.Count)
	assertDecimal(suite.T(), "3300", d.Investments.Initial)
	assertDecimal(suite.T(), "280", d.Investments.Interest)
	assertDecimal(suite.T(), "3580", d.Investments.Total)
	assertDecimal(suite.T(), "8.48", d.Investments.Rate)

	suite.Require().Len(d.InvestmentsByOption, 3)
	assert.Equal(suite.T(), "Tesouro Direto", d.InvestmentsByOption[0].Option)
	assert.Equal(suite.T(), finance.Palette[1], d.InvestmentsByOption[0].Color)
	assert.Equal(suite.T(), "CDI/CDB", d.InvestmentsByOption[1].Option)
	assertDecimal(suite.T(), "1150", d.InvestmentsByOption[1].Total)
	assert.Equal(suite.T(), finance.Palette[0], d.InvestmentsByOption[1].Color)
	assert.Equal(suite.T(), finance.OtherOption, d.InvestmentsByOption[2].Option)

	suite.Require().Len(d.CashFlowSeries, 2)
	assert.Equal(suite.T(), "mai 2024", d.CashFlowSeries[0].Label)
	assertDecimal(suite.T(), "5000", d.CashFlowSeries[0].Totals["inflow"])
	assert.Equal(suite.T(), "jun 2024", d.CashFlowSeries[1].Label)
	assertDecimal(suite.T(), "-500", d.CashFlowSeries[1].Totals["balance"])

	suite.Require().Len(d.ExpenseControlSeries, 1)
	assertDecimal(suite.T(), "1300", d.ExpenseControlSeries[0].Totals["balance"])
}

func (suite *TestSuiteStandard) TestDashboardPeriod() {
	suite.createDashboardData()
	d := getTestDashboard(suite.T(), "period=Maio")

	assert.Equal(suite.T(), "Maio", d.Period)

	assert.Equal(suite.T(), 1, d.Clients.Count, "Only Ana is due in May")
	assertDecimal(suite.T(), "1100", d.Clients.Total)

	assert.Equal(suite.T(), 0, d.Credits.Count, "The last installment is due in June")
	assertDecimal(suite.T(), "0", d.Credits.Total)

	assertDecimal(suite.T(), "5000", d.CashFlow.Inflow)
	assertDecimal(suite.T(), "1300", d.ExpenseControl.Balance)

	assert.Equal(suite.T(), 2, d.Investments.Count)
	assertDecimal(suite.T(), "3250", d.Investments.Total)
	assertDecimal(suite.T(), "8.33", d.Investments.Rate)
	assert.Len(suite.T(), d.InvestmentsByOption, 2)

	// Series only cover the selected period
	suite.Require().Len(d.CashFlowSeries, 1)
	assert.Equal(suite.T(), "mai 2024", d.CashFlowSeries[0].Label)
	assertDecimal(suite.T(), "1800", d.CashFlowSeries[0].Totals["balance"])

	suite.Require().Len(d.ExpenseControlSeries, 1)
	assert.Equal(suite.T(), "mai 2024", d.ExpenseControlSeries[0].Label)

	d = getTestDashboard(suite.T(), "period=Julho")
	assert.Empty(suite.T(), d.CashFlowSeries)
	assert.Empty(suite.T(), d.ExpenseControlSeries)
}

func (suite *TestSuiteStandard) TestDashboardSearch() {
	suite.createDashboardData()
	d := getTestDashboard(suite.T(), "search=nubank")

	assert.Equal(suite.T(), 0, d.Clients.Count)
	assert.Equal(suite.T(), 0, d.Credits.Count)
	assert.Equal(suite.T(), 1, d.Investments.Count)
	assertDecimal(suite.T(), "9000", d.CashFlow.Inflow, "Cash flow has no text to search")

	d = getTestDashboard(suite.T(), "search=ana")
	assert.Equal(suite.T(), 1, d.Clients.Count)
	assert.Equal(suite.T(), 0, d.Investments.Count)
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}
