package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DeriveRequest describes a single field edit on a record that is not stored yet.
type DeriveRequest[R any] struct {
	Record R      `json:"record"`                          // Current state of the record
	Field  string `json:"field" example:"initialAmount"` // JSON name of the field that changed
	Value  any    `json:"value"`                           // New value of the field
}

type DeriveResponse[R any] struct {
	Data  *R      `json:"data"`                                                                                     // The record with all derived fields recomputed
	Error *string `json:"error" example:"the body of your request contains invalid or un-parseable data. Please check and try again"` // The error, if any occurred
}

type CurrencyMaskRequest struct {
	Input string `json:"input" example:"R$ 1.000,001"` // Raw text of the masked input
}

type CurrencyMask struct {
	Formatted string          `json:"formatted" example:"R$ 10.000,01"` // Text to display in the input
	Value     decimal.Decimal `json:"value" example:"10000.01"`          // Amount represented by the input
}

type CurrencyMaskResponse struct {
	Data  *CurrencyMask `json:"data"`                                                   // The masked input
	Error *string       `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// RegisterDeriveRoutes registers the live edit routes with
// the RouterGroup that is passed.
func RegisterDeriveRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/clients", httputil.OptionsPost)
	r.POST("/clients", DeriveClient)

	r.OPTIONS("/credits", httputil.OptionsPost)
	r.POST("/credits", DeriveCredit)

	r.OPTIONS("/cash-flows", httputil.OptionsPost)
	r.POST("/cash-flows", DeriveCashFlow)

	r.OPTIONS("/expense-controls", httputil.OptionsPost)
	r.POST("/expense-controls", DeriveExpenseControl)

	r.OPTIONS("/investments", httputil.OptionsPost)
	r.POST("/investments", DeriveInvestment)

	r.OPTIONS("/currency-mask", httputil.OptionsPost)
	r.POST("/currency-mask", MaskCurrency)
}

// derive sets one field on a record and returns the record with its derived fields recomputed.
func derive[R interface{ With(string, any) R }](c *gin.Context) {
	var request DeriveRequest[R]

	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DeriveResponse[R]{Error: &s})
		return
	}

	record := request.Record.With(request.Field, request.Value)
	c.JSON(http.StatusOK, DeriveResponse[R]{Data: &record})
}

// @Summary		Derive client
// @Description	Sets a field on a client that is being edited and returns it with total and end date recomputed
// @Tags			Derive
// @Accept			json
// @Produce		json
// @Success		200		{object}	DeriveResponse[finance.MonthlyClient]
// @Failure		400		{object}	DeriveResponse[finance.MonthlyClient]
// @Param			request	body		DeriveRequest[finance.MonthlyClient]	true	"Edit"
// @Router			/v1/derive/clients [post]
func DeriveClient(c *gin.Context) {
	derive[finance.MonthlyClient](c)
}

// @Summary		Derive credit
// @Description	Sets a field on a credit that is being edited and returns it with total, interest, rate and end date recomputed
// @Tags			Derive
// @Accept			json
// @Produce		json
// @Success		200		{object}	DeriveResponse[finance.InstallmentCredit]
// @Failure		400		{object}	DeriveResponse[finance.InstallmentCredit]
// @Param			request	body		DeriveRequest[finance.InstallmentCredit]	true	"Edit"
// @Router			/v1/derive/credits [post]
func DeriveCredit(c *gin.Context) {
	derive[finance.InstallmentCredit](c)
}

// @Summary		Derive cash flow entry
// @Description	Sets a field on a cash flow entry that is being edited. The balance is not derived.
// @Tags			Derive
// @Accept			json
// @Produce		json
// @Success		200		{object}	DeriveResponse[finance.CashFlowEntry]
// @Failure		400		{object}	DeriveResponse[finance.CashFlowEntry]
// @Param			request	body		DeriveRequest[finance.CashFlowEntry]	true	"Edit"
// @Router			/v1/derive/cash-flows [post]
func DeriveCashFlow(c *gin.Context) {
	derive[finance.CashFlowEntry](c)
}

// @Summary		Derive expense control entry
// @Description	Sets a field on an expense control entry that is being edited and returns it with the balance recomputed
// @Tags			Derive
// @Accept			json
// @Produce		json
// @Success		200		{object}	DeriveResponse[finance.ExpenseControlEntry]
// @Failure		400		{object}	DeriveResponse[finance.ExpenseControlEntry]
// @Param			request	body		DeriveRequest[finance.ExpenseControlEntry]	true	"Edit"
// @Router			/v1/derive/expense-controls [post]
func DeriveExpenseControl(c *gin.Context) {
	derive[finance.ExpenseControlEntry](c)
}

// @Summary		Derive investment
// @Description	Sets a field on an investment that is being edited and returns it with interest and rate recomputed
// @Tags			Derive
// @Accept			json
// @Produce		json
// @Success		200		{object}	DeriveResponse[finance.InvestmentEntry]
// @Failure		400		{object}	DeriveResponse[finance.InvestmentEntry]
// @Param			request	body		DeriveRequest[finance.InvestmentEntry]	true	"Edit"
// @Router			/v1/derive/investments [post]
func DeriveInvestment(c *gin.Context) {
	derive[finance.InvestmentEntry](c)
}

// @Summary		Mask currency input
// @Description	Reads the digits of a currency input as cents and returns the text to display
// @Tags			Derive
// @Accept			json
// @Produce		json
// @Success		200		{object}	CurrencyMaskResponse
// @Failure		400		{object}	CurrencyMaskResponse
// @Param			request	body		CurrencyMaskRequest	true	"Input"
// @Router			/v1/derive/currency-mask [post]
func MaskCurrency(c *gin.Context) {
	var request CurrencyMaskRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CurrencyMaskResponse{Error: &s})
		return
	}

	var mask CurrencyMask
	mask.Formatted, mask.Value = finance.CurrencyMask(request.Input)

	c.JSON(http.StatusOK, CurrencyMaskResponse{Data: &mask})
}
