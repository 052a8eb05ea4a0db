package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/finance"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// model is implemented by pointers to the stored models. It converts
// between the model and its finance record.
type model[M, R any] interface {
	*M
	Record() R
	Apply(R)
}

// resource implements the CRUD endpoints of one record category.
//
// M is the stored model, R the finance record and A the API representation.
type resource[M any, PM model[M, R], R any, A any] struct {
	order string                                       // Order in which records are listed
	query func(search, period string) finance.Query[R] // Filter for list requests
	api   func(url string, m M) A                      // Converts a model to its API representation
}

// records returns all stored models in the resource order.
func (res resource[M, PM, R, A]) records() ([]M, error) {
	var ms []M
	err := models.DB.Order(res.order).Find(&ms).Error
	return ms, err
}

// filter keeps the models whose records match the list query.
func (res resource[M, PM, R, A]) filter(ms []M, lq ListQuery) []M {
	q := finance.Over(res.query(lq.Search, lq.Period).WithPattern(lq.Pattern), func(m M) R {
		return PM(&m).Record()
	})

	return q.Apply(ms)
}

func (res resource[M, PM, R, A]) optionsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func (res resource[M, PM, R, A]) optionsDetail(c *gin.Context) {
	_, ok := res.find(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// find loads the model identified by the URI. If that fails, the error
// response is written and ok is false.
func (res resource[M, PM, R, A]) find(c *gin.Context) (m M, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), Response[A]{
			Error: &s,
		})
		return m, false
	}

	err = models.DB.First(&m, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), Response[A]{
			Error: &s,
		})
		return m, false
	}

	return m, true
}

func (res resource[M, PM, R, A]) create(c *gin.Context) {
	var records []R

	// Bind data and return error if not possible
	err := httputil.BindData(c, &records)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreateResponse[A]{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreateResponse[A]{}
	url := c.GetString(string(models.DBContextURL))

	for _, record := range records {
		var m M
		PM(&m).Apply(record)

		err = models.DB.Create(&m).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := res.api(url, m)
		r.Data = append(r.Data, Response[A]{Data: &data})
	}

	c.JSON(status, r)
}

func (res resource[M, PM, R, A]) list(c *gin.Context) {
	var filter ListQuery

	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ListResponse[A]{
			Error: &s,
		})
		return
	}

	ms, err := res.records()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ListResponse[A]{
			Error: &s,
		})
		return
	}

	filtered := res.filter(ms, filter)

	// Default to 50 records
	limit := 50
	if c.Request.URL.Query().Has("limit") {
		limit = filter.Limit
	}

	page := paginate(filtered, filter.Offset, limit)

	url := c.GetString(string(models.DBContextURL))
	data := make([]A, 0, len(page))
	for _, m := range page {
		data = append(data, res.api(url, m))
	}

	c.JSON(http.StatusOK, ListResponse[A]{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  len(filtered),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

func (res resource[M, PM, R, A]) get(c *gin.Context) {
	m, ok := res.find(c)
	if !ok {
		return
	}

	data := res.api(c.GetString(string(models.DBContextURL)), m)
	c.JSON(http.StatusOK, Response[A]{Data: &data})
}

// update overwrites the fields present in the request body and recomputes
// the derived fields.
func (res resource[M, PM, R, A]) update(c *gin.Context) {
	m, ok := res.find(c)
	if !ok {
		return
	}

	record := PM(&m).Record()
	err := httputil.BindData(c, &record)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), Response[A]{
			Error: &s,
		})
		return
	}

	PM(&m).Apply(record)
	err = models.DB.Save(&m).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), Response[A]{
			Error: &s,
		})
		return
	}

	data := res.api(c.GetString(string(models.DBContextURL)), m)
	c.JSON(http.StatusOK, Response[A]{Data: &data})
}

func (res resource[M, PM, R, A]) delete(c *gin.Context) {
	m, ok := res.find(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&m).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// paginate returns the records selected by offset and limit. A negative
// limit selects all records after offset.
func paginate[T any](records []T, offset uint, limit int) []T {
	if offset >= uint(len(records)) {
		return []T{}
	}

	records = records[offset:]
	if limit >= 0 && limit < len(records) {
		records = records[:limit]
	}

	return records
}
