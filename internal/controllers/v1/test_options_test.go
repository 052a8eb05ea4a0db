package v1_test

import (
	"net/http"
	"testing"

	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/clients", "OPTIONS, GET, POST"},
		{"http://example.com/v1/credits", "OPTIONS, GET, POST"},
		{"http://example.com/v1/cash-flows", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expense-controls", "OPTIONS, GET, POST"},
		{"http://example.com/v1/investments", "OPTIONS, GET, POST"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/alerts", "OPTIONS, GET"},
		{"http://example.com/v1/derive/clients", "OPTIONS, POST"},
		{"http://example.com/v1/derive/credits", "OPTIONS, POST"},
		{"http://example.com/v1/derive/cash-flows", "OPTIONS, POST"},
		{"http://example.com/v1/derive/expense-controls", "OPTIONS, POST"},
		{"http://example.com/v1/derive/investments", "OPTIONS, POST"},
		{"http://example.com/v1/derive/currency-mask", "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
