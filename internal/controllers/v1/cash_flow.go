package v1

import (
	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CashFlow is the API representation of a cash flow entry.
type CashFlow struct {
	models.DefaultModel
	finance.CashFlowEntry
	Links Links `json:"links"`
}

func newCashFlow(url string, m models.CashFlow) CashFlow {
	return CashFlow{
		DefaultModel:  m.DefaultModel,
		CashFlowEntry: m.Record(),
		Links: Links{
			Self: url + "/v1/cash-flows/" + m.ID.String(),
		},
	}
}

var cashFlows = resource[models.CashFlow, *models.CashFlow, finance.CashFlowEntry, CashFlow]{
	order: "period ASC, created_at ASC",
	query: func(_, period string) finance.Query[finance.CashFlowEntry] {
		return finance.CashFlowQuery(period)
	},
	api: newCashFlow,
}

// RegisterCashFlowRoutes registers the routes for cash flow entries with
// the RouterGroup that is passed.
func RegisterCashFlowRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCashFlowList)
		r.GET("", GetCashFlows)
		r.POST("", CreateCashFlows)
	}

	// Cash flow entry with ID
	{
		r.OPTIONS("/:id", OptionsCashFlowDetail)
		r.GET("/:id", GetCashFlow)
		r.PATCH("/:id", UpdateCashFlow)
		r.DELETE("/:id", DeleteCashFlow)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cash Flow
// @Success		204
// @Router			/v1/cash-flows [options]
func OptionsCashFlowList(c *gin.Context) {
	cashFlows.optionsList(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cash Flow
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cash-flows/{id} [options]
func OptionsCashFlowDetail(c *gin.Context) {
	cashFlows.optionsDetail(c)
}

// @Summary		Create cash flow entries
// @Description	Creates new monthly cashFlows. Total and end date are derived from the other fields.
// @Tags			Cash Flow
// @Produce		json
// @Success		201		{object}	CreateResponse[CashFlow]
// @Failure		400		{object}	CreateResponse[CashFlow]
// @Failure		500		{object}	CreateResponse[CashFlow]
// @Param			cashFlows	body		[]finance.CashFlowEntry	true	"Cash flow entries"
// @Router			/v1/cash-flows [post]
func CreateCashFlows(c *gin.Context) {
	cashFlows.create(c)
}

// @Summary		Get cash flow entries
// @Description	Returns a list of cash flow entries ordered by period
// @Tags			Cash Flow
// @Produce		json
// @Success		200		{object}	ListResponse[CashFlow]
// @Failure		400		{object}	ListResponse[CashFlow]
// @Failure		500		{object}	ListResponse[CashFlow]
// @Router			/v1/cash-flows [get]
// @Param			search	query	string	false	"Ignored, cash flow entries have no text fields"
// @Param			period	query	string	false	"Only entries in this month, e.g. 'Março'"
// @Param			offset	query	uint	false	"The offset of the first cash flow entry returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of cash flow entries to return. Defaults to 50."
func GetCashFlows(c *gin.Context) {
	cashFlows.list(c)
}

// @Summary		Get cash flow entry
// @Description	Returns a specific cash flow entry
// @Tags			Cash Flow
// @Produce		json
// @Success		200	{object}	Response[CashFlow]
// @Failure		400	{object}	Response[CashFlow]
// @Failure		404	{object}	Response[CashFlow]
// @Failure		500	{object}	Response[CashFlow]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/cash-flows/{id} [get]
func GetCashFlow(c *gin.Context) {
	cashFlows.get(c)
}

// @Summary		Update cash flow entry
// @Description	Updates a cash flow entry. Only values to be updated need to be specified.
// @Tags			Cash Flow
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[CashFlow]
// @Failure		400		{object}	Response[CashFlow]
// @Failure		404		{object}	Response[CashFlow]
// @Failure		500		{object}	Response[CashFlow]
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			cashFlow	body		finance.CashFlowEntry	true	"Cash flow entry"
// @Router			/v1/cash-flows/{id} [patch]
func UpdateCashFlow(c *gin.Context) {
	cashFlows.update(c)
}

// @Summary		Delete cash flow entry
// @Description	Deletes a cash flow entry
// @Tags			Cash Flow
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/cash-flows/{id} [delete]
func DeleteCashFlow(c *gin.Context) {
	cashFlows.delete(c)
}
