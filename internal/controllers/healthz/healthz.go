// Package healthz reports whether the backend can reach its database.
package healthz

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HealthResponse struct {
	Error string `json:"error" example:"an error occurred on the server during your request"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	HealthResponse
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		unhealthy(c, nil)
		return
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		unhealthy(c, err)
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		unhealthy(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func unhealthy(c *gin.Context, err error) {
	log.Error().Err(err).Msg("health check failed")
	c.JSON(http.StatusInternalServerError, HealthResponse{
		Error: models.ErrGeneral.Error(),
	})
}
