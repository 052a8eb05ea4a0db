package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidToday = errors.New("the today parameter must be a date in the format YYYY-MM-DD")

type AlertsQuery struct {
	Today string `form:"today" example:"2024-05-20"` // Reference date, defaults to the current date
}

// InvestmentRate is the total and interest rate of one investment.
type InvestmentRate struct {
	Institution  string          `json:"institution" example:"Nubank"`
	TotalAmount  decimal.Decimal `json:"totalAmount" example:"1150"`
	InterestRate decimal.Decimal `json:"interestRate" example:"15"`
}

// Alerts lists what needs attention on a given day.
type Alerts struct {
	Today       string            `json:"today" example:"2024-05-20"`
	DueSoon     []finance.DueItem `json:"dueSoon"`     // Credits and clients due between ten days ago and five days ahead
	Investments []InvestmentRate  `json:"investments"` // All investments with their rate
}

type AlertsResponse struct {
	Data  *Alerts `json:"data"`                                                                 // Data for the alerts
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterAlertRoutes registers the routes for alerts with
// the RouterGroup that is passed.
func RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAlerts)
	r.GET("", GetAlerts)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get alerts
// @Description	Returns the credits and clients that are due soon and the rates of all investments
// @Tags			Alerts
// @Produce		json
// @Success		200		{object}	AlertsResponse
// @Failure		400		{object}	AlertsResponse
// @Failure		500		{object}	AlertsResponse
// @Param			today	query		string	false	"Reference date as YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/alerts [get]
func GetAlerts(c *gin.Context) {
	var query AlertsQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertsResponse{Error: &s})
		return
	}

	today := time.Now()
	if strings.TrimSpace(query.Today) != "" {
		today, err = time.Parse(finance.DateLayout, strings.TrimSpace(query.Today))
		if err != nil {
			s := errInvalidToday.Error()
			c.JSON(http.StatusBadRequest, AlertsResponse{Error: &s})
			return
		}
	}

	alerts, err := buildAlerts(today)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AlertsResponse{Data: &alerts})
}

// buildAlerts loads clients, credits and investments without any filter.
func buildAlerts(today time.Time) (Alerts, error) {
	clientRecords, err := stored(clients)
	if err != nil {
		return Alerts{}, err
	}

	creditRecords, err := stored(credits)
	if err != nil {
		return Alerts{}, err
	}

	investmentRecords, err := stored(investments)
	if err != nil {
		return Alerts{}, err
	}

	rates := make([]InvestmentRate, 0, len(investmentRecords))
	for _, i := range investmentRecords {
		rates = append(rates, InvestmentRate{
			Institution:  i.Institution,
			TotalAmount:  i.TotalAmount,
			InterestRate: i.InterestRate,
		})
	}

	return Alerts{
		Today:       today.Format(finance.DateLayout),
		DueSoon:     finance.DueSoon(clientRecords, creditRecords, today),
		Investments: rates,
	}, nil
}
