package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the v1 root and all v1 resources.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)

	RegisterClientRoutes(r.Group("/clients"))
	RegisterCreditRoutes(r.Group("/credits"))
	RegisterCashFlowRoutes(r.Group("/cash-flows"))
	RegisterExpenseControlRoutes(r.Group("/expense-controls"))
	RegisterInvestmentRoutes(r.Group("/investments"))
	RegisterDashboardRoutes(r.Group("/dashboard"))
	RegisterAlertRoutes(r.Group("/alerts"))
	RegisterDeriveRoutes(r.Group("/derive"))
}

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Clients         string `json:"clients" example:"https://example.com/api/v1/clients"`                  // URL of Client collection endpoint
	Credits         string `json:"credits" example:"https://example.com/api/v1/credits"`                  // URL of Credit collection endpoint
	CashFlows       string `json:"cashFlows" example:"https://example.com/api/v1/cash-flows"`             // URL of Cash Flow collection endpoint
	ExpenseControls string `json:"expenseControls" example:"https://example.com/api/v1/expense-controls"` // URL of Expense Control collection endpoint
	Investments     string `json:"investments" example:"https://example.com/api/v1/investments"`          // URL of Investment collection endpoint
	Dashboard       string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`              // URL of the dashboard endpoint
	Alerts          string `json:"alerts" example:"https://example.com/api/v1/alerts"`                    // URL of the alerts endpoint
	Derive          string `json:"derive" example:"https://example.com/api/v1/derive"`                    // Base URL of the live edit endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Clients:         url + "/v1/clients",
			Credits:         url + "/v1/credits",
			CashFlows:       url + "/v1/cash-flows",
			ExpenseControls: url + "/v1/expense-controls",
			Investments:     url + "/v1/investments",
			Dashboard:       url + "/v1/dashboard",
			Alerts:          url + "/v1/alerts",
			Derive:          url + "/v1/derive",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
