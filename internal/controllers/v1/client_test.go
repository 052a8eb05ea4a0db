package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestClient(t *testing.T, c finance.MonthlyClient, expectedStatus ...int) v1.Client {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []finance.MonthlyClient{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/clients", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CreateResponse[v1.Client]
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return *response.Data[0].Data
	}

	return v1.Client{}
}

// TestClientsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestClientsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestClient(t, finance.MonthlyClient{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/clients", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ListResponse[v1.Client]
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestClientsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestClientsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Clients endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Client with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Client exists", createTestClient(suite.T(), finance.MonthlyClient{}).ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/clients", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestClientsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestClientsGetSingle() {
	c := createTestClient(suite.T(), finance.MonthlyClient{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Client", c.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Client with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/clients/%s", tt.id), "")

			var client v1.Response[v1.Client]
			test.DecodeResponse(t, &r, &client)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestClientsGetNotFoundMessage() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/clients/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.Response[v1.Client]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "there is no client matching your query", *response.Error)
}

// TestClientsCreate verifies that derived fields are computed on creation.
func (suite *TestSuiteStandard) TestClientsCreate() {
	c := createTestClient(suite.T(), finance.MonthlyClient{
		Name:           "  Ana Souza ",
		InitialAmount:  decimal.NewFromInt(1000),
		InterestAmount: decimal.NewFromInt(100),
		TotalAmount:    decimal.NewFromInt(5),
		StartDate:      "2024-01-31",
		Phone:          "11987654321",
	})

	assert.Equal(suite.T(), "Ana Souza", c.Name, "Name must be trimmed")
	assertDecimal(suite.T(), "1100", c.TotalAmount, "Total must be derived, not taken from the request")
	assert.Equal(suite.T(), "2024-02-29", c.EndDate)
	assert.Equal(suite.T(), "(11) 98765-4321", c.FormattedPhone)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/clients/%s", c.ID), c.Links.Self)

	// Reading the client back returns the same derived values
	r := test.Request(suite.T(), http.MethodGet, c.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Client]
	test.DecodeResponse(suite.T(), &r, &response)
	assertDecimal(suite.T(), "1100", response.Data.TotalAmount)
	assert.Equal(suite.T(), "2024-02-29", response.Data.EndDate)
}

func (suite *TestSuiteStandard) TestClientsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `[{"name": "Ana"`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data"},
		{"Blank name", `[{"name": "   "}]`, http.StatusBadRequest, models.ErrNameRequired.Error()},
		{"Invalid start date", `[{"name": "Ana", "startDate": "31/01/2024"}]`, http.StatusBadRequest, models.ErrInvalidDate.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/clients", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CreateResponse[v1.Client]
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.err)
				return
			}

			if assert.Len(t, response.Data, 1) {
				assert.Contains(t, *response.Data[0].Error, tt.err)
			}
		})
	}
}

// TestClientsCreatePartialFailure verifies that valid clients are created even
// if others in the same request fail.
func (suite *TestSuiteStandard) TestClientsCreatePartialFailure() {
	body := []finance.MonthlyClient{
		{Name: "Valid"},
		{Name: ""},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/clients", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CreateResponse[v1.Client]
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Valid", response.Data[0].Data.Name)
	assert.Nil(suite.T(), response.Data[1].Data)
	assert.Equal(suite.T(), models.ErrNameRequired.Error(), *response.Data[1].Error)
}

// TestClientsList verifies that search, period and pagination are applied.
func (suite *TestSuiteStandard) TestClientsList() {
	_ = createTestClient(suite.T(), finance.MonthlyClient{Name: "Ana Souza", StartDate: "2024-01-15", Phone: "11987654321"})
	_ = createTestClient(suite.T(), finance.MonthlyClient{Name: "Bruno Lima", StartDate: "2024-04-10", Phone: "21912345678"})
	_ = createTestClient(suite.T(), finance.MonthlyClient{Name: "Carla Dias", StartDate: "2024-02-01"})
	_ = createTestClient(suite.T(), finance.MonthlyClient{Name: "Sem Data"})

	tests := []struct {
		name  string
		query string
		names []string
		total int
	}{
		{"All", "", []string{"Sem Data", "Ana Souza", "Carla Dias", "Bruno Lima"}, 4},
		{"Search by name, ignoring case", "search=ANA", []string{"Ana Souza"}, 1},
		{"Search by phone", "search=2191", []string{"Bruno Lima"}, 1},
		{"Star is searched for literally", "search=a*a", []string{}, 0},
		{"Search with wildcard", "search=a*a&pattern=true", []string{"Sem Data", "Ana Souza", "Carla Dias"}, 3},
		{"Period by end date", "period=Fevereiro", []string{"Ana Souza"}, 1},
		{"Period in English", "period=march", []string{"Carla Dias"}, 1},
		{"Period all", "period=Todos", []string{"Sem Data", "Ana Souza", "Carla Dias", "Bruno Lima"}, 4},
		{"Unknown period matches dated clients", "period=Smarch", []string{"Ana Souza", "Carla Dias", "Bruno Lima"}, 3},
		{"Search and period", "search=a&period=Maio", []string{"Bruno Lima"}, 1},
		{"Limit", "limit=2", []string{"Sem Data", "Ana Souza"}, 4},
		{"Offset and limit", "offset=1&limit=2", []string{"Ana Souza", "Carla Dias"}, 4},
		{"No limit", "limit=-1&offset=3", []string{"Bruno Lima"}, 4},
		{"Offset beyond", "offset=10", []string{}, 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/clients?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ListResponse[v1.Client]
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, c := range response.Data {
				names = append(names, c.Name)
			}

			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.names), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestClientsListInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/clients?offset=-1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestClientsUpdate verifies that derived fields are recomputed on update
// and that fields missing from the request are kept.
func (suite *TestSuiteStandard) TestClientsUpdate() {
	c := createTestClient(suite.T(), finance.MonthlyClient{
		Name:           "Ana Souza",
		InitialAmount:  decimal.NewFromInt(1000),
		InterestAmount: decimal.NewFromInt(100),
		StartDate:      "2024-01-15",
	})

	r := test.Request(suite.T(), http.MethodPatch, c.Links.Self, map[string]any{
		"interestAmount": 250.5,
		"startDate":      "2024-03-31",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Client]
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Ana Souza", response.Data.Name)
	assertDecimal(suite.T(), "1000", response.Data.InitialAmount)
	assertDecimal(suite.T(), "1250.5", response.Data.TotalAmount)
	assert.Equal(suite.T(), "2024-04-30", response.Data.EndDate)
}

func (suite *TestSuiteStandard) TestClientsUpdateFails() {
	c := createTestClient(suite.T(), finance.MonthlyClient{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid body", `{"name": 2}`, http.StatusBadRequest},
		{"Broken body", `{"name": "Ana"`, http.StatusBadRequest},
		{"Blank name", `{"name": ""}`, http.StatusBadRequest},
		{"Invalid date", `{"startDate": "tomorrow"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, c.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/clients/%s", uuid.New()), `{"name": "Nobody"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestClientsDelete() {
	c := createTestClient(suite.T(), finance.MonthlyClient{})

	r := test.Request(suite.T(), http.MethodDelete, c.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, c.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, c.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
