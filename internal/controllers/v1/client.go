package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Client is the API representation of a monthly client.
type Client struct {
	models.DefaultModel
	finance.MonthlyClient
	FormattedPhone string `json:"formattedPhone" example:"(11) 98765-4321"` // Phone number for display
	Links          Links  `json:"links"`
}

func newClient(url string, m models.Client) Client {
	return Client{
		DefaultModel:   m.DefaultModel,
		MonthlyClient:  m.Record(),
		FormattedPhone: finance.FormatPhone(m.Phone),
		Links: Links{
			Self: fmt.Sprintf("%s/v1/clients/%s", url, m.ID),
		},
	}
}

var clients = resource[models.Client, *models.Client, finance.MonthlyClient, Client]{
	order: "end_date ASC, created_at ASC",
	query: finance.ClientQuery,
	api:   newClient,
}

// RegisterClientRoutes registers the routes for clients with
// the RouterGroup that is passed.
func RegisterClientRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsClientList)
		r.GET("", GetClients)
		r.POST("", CreateClients)
	}

	// Client with ID
	{
		r.OPTIONS("/:id", OptionsClientDetail)
		r.GET("/:id", GetClient)
		r.PATCH("/:id", UpdateClient)
		r.DELETE("/:id", DeleteClient)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Router			/v1/clients [options]
func OptionsClientList(c *gin.Context) {
	clients.optionsList(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/clients/{id} [options]
func OptionsClientDetail(c *gin.Context) {
	clients.optionsDetail(c)
}

// @Summary		Create clients
// @Description	Creates new monthly clients. Total and end date are derived from the other fields.
// @Tags			Clients
// @Produce		json
// @Success		201		{object}	CreateResponse[Client]
// @Failure		400		{object}	CreateResponse[Client]
// @Failure		500		{object}	CreateResponse[Client]
// @Param			clients	body		[]finance.MonthlyClient	true	"Clients"
// @Router			/v1/clients [post]
func CreateClients(c *gin.Context) {
	clients.create(c)
}

// @Summary		Get clients
// @Description	Returns a list of monthly clients ordered by their end date
// @Tags			Clients
// @Produce		json
// @Success		200		{object}	ListResponse[Client]
// @Failure		400		{object}	ListResponse[Client]
// @Failure		500		{object}	ListResponse[Client]
// @Router			/v1/clients [get]
// @Param			search	query	string	false	"Search for this text in name and phone"
// @Param			pattern	query	bool	false	"If true, '*' in search matches any text"
// @Param			period	query	string	false	"Only clients with an end date in this month, e.g. 'Março'"
// @Param			offset	query	uint	false	"The offset of the first client returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of clients to return. Defaults to 50."
func GetClients(c *gin.Context) {
	clients.list(c)
}

// @Summary		Get client
// @Description	Returns a specific client
// @Tags			Clients
// @Produce		json
// @Success		200	{object}	Response[Client]
// @Failure		400	{object}	Response[Client]
// @Failure		404	{object}	Response[Client]
// @Failure		500	{object}	Response[Client]
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/clients/{id} [get]
func GetClient(c *gin.Context) {
	clients.get(c)
}

// @Summary		Update client
// @Description	Updates a client. Only values to be updated need to be specified.
// @Tags			Clients
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Client]
// @Failure		400		{object}	Response[Client]
// @Failure		404		{object}	Response[Client]
// @Failure		500		{object}	Response[Client]
// @Param			id		path		URIID					true	"ID formatted as string"
// @Param			client	body		finance.MonthlyClient	true	"Client"
// @Router			/v1/clients/{id} [patch]
func UpdateClient(c *gin.Context) {
	clients.update(c)
}

// @Summary		Delete client
// @Description	Deletes a client
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/clients/{id} [delete]
func DeleteClient(c *gin.Context) {
	clients.delete(c)
}
