package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type DashboardQuery struct {
	Search  string `form:"search" example:"ana"`    // Search applied to clients, credits and investments
	Pattern bool   `form:"pattern" example:"false"` // If true, "*" in search matches anything
	Period  string `form:"period" example:"Maio"`   // Month name or "All"
}

// Dashboard holds the summary of all record categories for one search and period.
type Dashboard struct {
	Period               string                       `json:"period" example:"Maio"`
	Periods              []string                     `json:"periods" example:"All,Janeiro,Fevereiro"` // All values accepted for period
	Clients              finance.ClientTotals         `json:"clients"`
	Credits              finance.CreditTotals         `json:"credits"`
	CashFlow             finance.CashFlowTotals       `json:"cashFlow"`
	ExpenseControl       finance.ExpenseControlTotals `json:"expenseControl"`
	Investments          finance.InvestmentTotals     `json:"investments"`
	InvestmentsByOption  []finance.OptionShare        `json:"investmentsByOption"`  // Investment totals per option, largest first
	CashFlowSeries       []finance.SeriesPoint        `json:"cashFlowSeries"`       // Monthly cash flow in the period
	ExpenseControlSeries []finance.SeriesPoint        `json:"expenseControlSeries"` // Monthly expense control in the period
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                                 // Data for the dashboard
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns totals for all record categories, filtered by search and period
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			search	query		string	false	"Search for this text in clients, credits and investments"
// @Param			pattern	query		bool	false	"If true, '*' in search matches any text"
// @Param			period	query		string	false	"Month name, e.g. 'Março'. Defaults to all months."
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query DashboardQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	dashboard, err := buildDashboard(query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}

// buildDashboard loads all records and summarizes them.
func buildDashboard(query DashboardQuery) (Dashboard, error) {
	search, period := query.Search, query.Period
	if finance.IsAllMonths(period) {
		period = finance.AllMonths
	}

	clientRecords, err := stored(clients)
	if err != nil {
		return Dashboard{}, err
	}

	creditRecords, err := stored(credits)
	if err != nil {
		return Dashboard{}, err
	}

	cashFlowRecords, err := stored(cashFlows)
	if err != nil {
		return Dashboard{}, err
	}

	expenseRecords, err := stored(expenseControls)
	if err != nil {
		return Dashboard{}, err
	}

	investmentRecords, err := stored(investments)
	if err != nil {
		return Dashboard{}, err
	}

	filteredCashFlow := finance.CashFlowQuery(period).Apply(cashFlowRecords)
	filteredExpenses := finance.ExpenseControlQuery(period).Apply(expenseRecords)
	filteredInvestments := finance.InvestmentQuery(search, period).WithPattern(query.Pattern).Apply(investmentRecords)

	return Dashboard{
		Period:               period,
		Periods:              finance.Periods(),
		Clients:              finance.SummarizeClients(finance.ClientQuery(search, period).WithPattern(query.Pattern).Apply(clientRecords)),
		Credits:              finance.SummarizeCredits(finance.CreditQuery(search, period).WithPattern(query.Pattern).Apply(creditRecords)),
		CashFlow:             finance.SummarizeCashFlow(filteredCashFlow),
		ExpenseControl:       finance.SummarizeExpenseControl(filteredExpenses),
		Investments:          finance.SummarizeInvestments(filteredInvestments),
		InvestmentsByOption:  finance.GroupByOption(filteredInvestments),
		CashFlowSeries:       finance.CashFlowSeries(filteredCashFlow),
		ExpenseControlSeries: finance.ExpenseControlSeries(filteredExpenses),
	}, nil
}

// stored returns the records of all stored models of a resource.
func stored[M any, PM model[M, R], R any, A any](res resource[M, PM, R, A]) ([]R, error) {
	ms, err := res.records()
	if err != nil {
		return nil, err
	}

	records := make([]R, 0, len(ms))
	for i := range ms {
		records = append(records, PM(&ms[i]).Record())
	}

	return records, nil
}
