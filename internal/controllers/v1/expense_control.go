package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ExpenseControl is the API representation of an expense control entry.
type ExpenseControl struct {
	models.DefaultModel
	finance.ExpenseControlEntry
	Links Links `json:"links"`
}

func newExpenseControl(url string, m models.ExpenseControl) ExpenseControl {
	return ExpenseControl{
		DefaultModel:        m.DefaultModel,
		ExpenseControlEntry: m.Record(),
		Links: Links{
			Self: fmt.Sprintf("%s/v1/expense-controls/%s", url, m.ID),
		},
	}
}

var expenseControls = resource[models.ExpenseControl, *models.ExpenseControl, finance.ExpenseControlEntry, ExpenseControl]{
	order: "period ASC, created_at ASC",
	query: func(_, period string) finance.Query[finance.ExpenseControlEntry] {
		return finance.ExpenseControlQuery(period)
	},
	api: newExpenseControl,
}

// RegisterExpenseControlRoutes registers the routes for expense control entries with
// the RouterGroup that is passed.
func RegisterExpenseControlRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseControlList)
		r.GET("", GetExpenseControls)
		r.POST("", CreateExpenseControls)
	}

	// Expense control entry with ID
	{
		r.OPTIONS("/:id", OptionsExpenseControlDetail)
		r.GET("/:id", GetExpenseControl)
		r.PATCH("/:id", UpdateExpenseControl)
		r.DELETE("/:id", DeleteExpenseControl)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expense Control
// @Success		204
// @Router			/v1/expense-controls [options]
func OptionsExpenseControlList(c *gin.Context) {
	expenseControls.optionsList(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expense Control
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expense-controls/{id} [options]
func OptionsExpenseControlDetail(c *gin.Context) {
	expenseControls.optionsDetail(c)
}

// @Summary		Create expense control entries
// @Description	Creates new monthly expenseControls. Total and end date are derived from the other fields.
// @Tags			Expense Control
// @Produce		json
// @Success		201		{object}	CreateResponse[ExpenseControl]
// @Failure		400		{object}	CreateResponse[ExpenseControl]
// @Failure		500		{object}	CreateResponse[ExpenseControl]
// @Param			expenseControls	body		[]finance.ExpenseControlEntry	true	"Expense control entries"
// @Router			/v1/expense-controls [post]
func CreateExpenseControls(c *gin.Context) {
	expenseControls.create(c)
}

// @Summary		Get expense control entries
// @Description	Returns a list of expense control entries ordered by period
// @Tags			Expense Control
// @Produce		json
// @Success		200		{object}	ListResponse[ExpenseControl]
// @Failure		400		{object}	ListResponse[ExpenseControl]
// @Failure		500		{object}	ListResponse[ExpenseControl]
// @Router			/v1/expense-controls [get]
// @Param			search	query	string	false	"Ignored, expense control entries have no text fields"
// @Param			period	query	string	false	"Only entries in this month, e.g. 'Março'"
// @Param			offset	query	uint	false	"The offset of the first expense control entry returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of expense control entries to return. Defaults to 50."
func GetExpenseControls(c *gin.Context) {
	expenseControls.list(c)
}

// @Summary		Get expense control entry
// @Description	Returns a specific expense control entry
// @Tags			Expense Control
// @Produce		json
// @Success		200	{object}	Response[ExpenseControl]
// @Failure		400	{object}	Response[ExpenseControl]
// @Failure		404	{object}	Response[ExpenseControl]
// @Failure		500	{object}	Response[ExpenseControl]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/expense-controls/{id} [get]
func GetExpenseControl(c *gin.Context) {
	expenseControls.get(c)
}

// @Summary		Update expense control entry
// @Description	Updates an expense control entry. Only values to be updated need to be specified.
// @Tags			Expense Control
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[ExpenseControl]
// @Failure		400		{object}	Response[ExpenseControl]
// @Failure		404		{object}	Response[ExpenseControl]
// @Failure		500		{object}	Response[ExpenseControl]
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			expenseControl	body		finance.ExpenseControlEntry	true	"Expense control entry"
// @Router			/v1/expense-controls/{id} [patch]
func UpdateExpenseControl(c *gin.Context) {
	expenseControls.update(c)
}

// @Summary		Delete expense control entry
// @Description	Deletes an expense control entry
// @Tags			Expense Control
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/expense-controls/{id} [delete]
func DeleteExpenseControl(c *gin.Context) {
	expenseControls.delete(c)
}
