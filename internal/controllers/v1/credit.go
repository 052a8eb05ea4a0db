package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Credit is the API representation of an installment credit.
type Credit struct {
	models.DefaultModel
	finance.InstallmentCredit
	RateTier       finance.RateTier `json:"rateTier" example:"normal"`               // Classification of the interest rate
	FormattedPhone string           `json:"formattedPhone" example:"(11) 98765-4321"` // Phone number for display
	Links          Links            `json:"links"`
}

func newCredit(url string, m models.Credit) Credit {
	record := m.Record()

	return Credit{
		DefaultModel:      m.DefaultModel,
		InstallmentCredit: record,
		RateTier:          record.RateTier(),
		FormattedPhone:    finance.FormatPhone(m.Phone),
		Links: Links{
			Self: fmt.Sprintf("%s/v1/credits/%s", url, m.ID),
		},
	}
}

var credits = resource[models.Credit, *models.Credit, finance.InstallmentCredit, Credit]{
	order: "end_date ASC, created_at ASC",
	query: finance.CreditQuery,
	api:   newCredit,
}

// RegisterCreditRoutes registers the routes for credits with
// the RouterGroup that is passed.
func RegisterCreditRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditList)
		r.GET("", GetCredits)
		r.POST("", CreateCredits)
	}

	// Credit with ID
	{
		r.OPTIONS("/:id", OptionsCreditDetail)
		r.GET("/:id", GetCredit)
		r.PATCH("/:id", UpdateCredit)
		r.DELETE("/:id", DeleteCredit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Router			/v1/credits [options]
func OptionsCreditList(c *gin.Context) {
	credits.optionsList(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [options]
func OptionsCreditDetail(c *gin.Context) {
	credits.optionsDetail(c)
}

// @Summary		Create credits
// @Description	Creates new monthly credits. Total and end date are derived from the other fields.
// @Tags			Credits
// @Produce		json
// @Success		201		{object}	CreateResponse[Credit]
// @Failure		400		{object}	CreateResponse[Credit]
// @Failure		500		{object}	CreateResponse[Credit]
// @Param			credits	body		[]finance.InstallmentCredit	true	"Credits"
// @Router			/v1/credits [post]
func CreateCredits(c *gin.Context) {
	credits.create(c)
}

// @Summary		Get credits
// @Description	Returns a list of installment credits ordered by the date of their last installment
// @Tags			Credits
// @Produce		json
// @Success		200		{object}	ListResponse[Credit]
// @Failure		400		{object}	ListResponse[Credit]
// @Failure		500		{object}	ListResponse[Credit]
// @Router			/v1/credits [get]
// @Param			search	query	string	false	"Search for this text in name, credit option and phone"
// @Param			pattern	query	bool	false	"If true, '*' in search matches any text"
// @Param			period	query	string	false	"Only credits with the last installment in this month, e.g. 'Março'"
// @Param			offset	query	uint	false	"The offset of the first credit returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of credits to return. Defaults to 50."
func GetCredits(c *gin.Context) {
	credits.list(c)
}

// @Summary		Get credit
// @Description	Returns a specific credit
// @Tags			Credits
// @Produce		json
// @Success		200	{object}	Response[Credit]
// @Failure		400	{object}	Response[Credit]
// @Failure		404	{object}	Response[Credit]
// @Failure		500	{object}	Response[Credit]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/credits/{id} [get]
func GetCredit(c *gin.Context) {
	credits.get(c)
}

// @Summary		Update credit
// @Description	Updates a credit. Only values to be updated need to be specified.
// @Tags			Credits
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Credit]
// @Failure		400		{object}	Response[Credit]
// @Failure		404		{object}	Response[Credit]
// @Failure		500		{object}	Response[Credit]
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			credit	body		finance.InstallmentCredit	true	"Credit"
// @Router			/v1/credits/{id} [patch]
func UpdateCredit(c *gin.Context) {
	credits.update(c)
}

// @Summary		Delete credit
// @Description	Deletes a credit
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/credits/{id} [delete]
func DeleteCredit(c *gin.Context) {
	credits.delete(c)
}
