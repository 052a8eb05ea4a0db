package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Investment is the API representation of an investment.
type Investment struct {
	models.DefaultModel
	finance.InvestmentEntry
	Links Links `json:"links"`
}

func newInvestment(url string, m models.Investment) Investment {
	return Investment{
		DefaultModel:    m.DefaultModel,
		InvestmentEntry: m.Record(),
		Links: Links{
			Self: fmt.Sprintf("%s/v1/investments/%s", url, m.ID),
		},
	}
}

var investments = resource[models.Investment, *models.Investment, finance.InvestmentEntry, Investment]{
	order: "period ASC, created_at ASC",
	query: finance.InvestmentQuery,
	api:   newInvestment,
}

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInvestmentList)
		r.GET("", GetInvestments)
		r.POST("", CreateInvestments)
	}

	// Investment with ID
	{
		r.OPTIONS("/:id", OptionsInvestmentDetail)
		r.GET("/:id", GetInvestment)
		r.PATCH("/:id", UpdateInvestment)
		r.DELETE("/:id", DeleteInvestment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments [options]
func OptionsInvestmentList(c *gin.Context) {
	investments.optionsList(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/investments/{id} [options]
func OptionsInvestmentDetail(c *gin.Context) {
	investments.optionsDetail(c)
}

// @Summary		Create investments
// @Description	Creates new monthly investments. Total and end date are derived from the other fields.
// @Tags			Investments
// @Produce		json
// @Success		201		{object}	CreateResponse[Investment]
// @Failure		400		{object}	CreateResponse[Investment]
// @Failure		500		{object}	CreateResponse[Investment]
// @Param			investments	body		[]finance.InvestmentEntry	true	"Investments"
// @Router			/v1/investments [post]
func CreateInvestments(c *gin.Context) {
	investments.create(c)
}

// @Summary		Get investments
// @Description	Returns a list of investments ordered by period
// @Tags			Investments
// @Produce		json
// @Success		200		{object}	ListResponse[Investment]
// @Failure		400		{object}	ListResponse[Investment]
// @Failure		500		{object}	ListResponse[Investment]
// @Router			/v1/investments [get]
// @Param			search	query	string	false	"Search for this text in institution and investment option"
// @Param			pattern	query	bool	false	"If true, '*' in search matches any text"
// @Param			period	query	string	false	"Only investments in this month, e.g. 'Março'"
// @Param			offset	query	uint	false	"The offset of the first investment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of investments to return. Defaults to 50."
func GetInvestments(c *gin.Context) {
	investments.list(c)
}

// @Summary		Get investment
// @Description	Returns a specific investment
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	Response[Investment]
// @Failure		400	{object}	Response[Investment]
// @Failure		404	{object}	Response[Investment]
// @Failure		500	{object}	Response[Investment]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/investments/{id} [get]
func GetInvestment(c *gin.Context) {
	investments.get(c)
}

// @Summary		Update investment
// @Description	Updates an investment. Only values to be updated need to be specified.
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Investment]
// @Failure		400		{object}	Response[Investment]
// @Failure		404		{object}	Response[Investment]
// @Failure		500		{object}	Response[Investment]
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			investment	body		finance.InvestmentEntry	true	"Investment"
// @Router			/v1/investments/{id} [patch]
func UpdateInvestment(c *gin.Context) {
	investments.update(c)
}

// @Summary		Delete investment
// @Description	Deletes an investment
// @Tags			Investments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/investments/{id} [delete]
func DeleteInvestment(c *gin.Context) {
	investments.delete(c)
}
