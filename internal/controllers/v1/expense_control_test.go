package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestExpenseControl(t *testing.T, e finance.ExpenseControlEntry, expectedStatus ...int) v1.ExpenseControl {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expense-controls", []finance.ExpenseControlEntry{e})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CreateResponse[v1.ExpenseControl]
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return *response.Data[0].Data
	}

	return v1.ExpenseControl{}
}

func (suite *TestSuiteStandard) TestExpenseControlsBalance() {
	e := createTestExpenseControl(suite.T(), finance.ExpenseControlEntry{
		Revenue:           decimal.NewFromInt(6000),
		MandatoryExpenses: decimal.NewFromInt(3500),
		VariableExpenses:  decimal.NewFromInt(1200),
		Balance:           decimal.NewFromInt(99),
		Period:            "2024-05-01",
	})

	assertDecimal(suite.T(), "1300", e.Balance)

	r := test.Request(suite.T(), http.MethodPatch, e.Links.Self, `{"variableExpenses": 3000}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.ExpenseControl]
	test.DecodeResponse(suite.T(), &r, &response)
	assertDecimal(suite.T(), "-500", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestExpenseControlsList() {
	_ = createTestExpenseControl(suite.T(), finance.ExpenseControlEntry{Revenue: decimal.NewFromInt(1), Period: "2024-05-01"})
	_ = createTestExpenseControl(suite.T(), finance.ExpenseControlEntry{Revenue: decimal.NewFromInt(2), Period: "2024-06-01"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expense-controls?period=Junho", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ListResponse[v1.ExpenseControl]
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assertDecimal(suite.T(), "2", response.Data[0].Revenue)
	}
}

func (suite *TestSuiteStandard) TestExpenseControlsDelete() {
	e := createTestExpenseControl(suite.T(), finance.ExpenseControlEntry{})

	r := test.Request(suite.T(), http.MethodDelete, e.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.Response[v1.ExpenseControl]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "there is no expense control matching your query", *response.Error)
}
