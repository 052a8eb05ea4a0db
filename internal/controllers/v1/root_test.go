package v1_test

import (
	"net/http"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.RootLinks{
		Clients:         "http://example.com/v1/clients",
		Credits:         "http://example.com/v1/credits",
		CashFlows:       "http://example.com/v1/cash-flows",
		ExpenseControls: "http://example.com/v1/expense-controls",
		Investments:     "http://example.com/v1/investments",
		Dashboard:       "http://example.com/v1/dashboard",
		Alerts:          "http://example.com/v1/alerts",
		Derive:          "http://example.com/v1/derive",
	}, response.Links)
}
