package v1

import (
	fintrack_uuid "github.com/fintrack/backend/internal/uuid"
)

type URIID struct {
	ID fintrack_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// ListQuery holds the parameters shared by all list endpoints.
type ListQuery struct {
	Search  string `form:"search" example:"ana"`    // Case insensitive text search
	Pattern bool   `form:"pattern" example:"false"` // If true, "*" in search matches anything
	Period  string `form:"period" example:"Maio"`   // Month name or "All"
	Offset  uint   `form:"offset" example:"0"`      // The offset of the first record returned. Defaults to 0.
	Limit   int    `form:"limit" example:"50"`      // Maximum number of records to return. Defaults to 50, -1 returns all records.
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

type Links struct {
	Self string `json:"self" example:"https://example.com/api/v1/clients/3b1ea324-d438-4419-882a-2fc91d71772f"` // The resource itself
}

// Response is the response for a single resource.
type Response[A any] struct {
	Data  *A      `json:"data"`                                                          // Data for the resource
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ListResponse is the response for a list of resources.
type ListResponse[A any] struct {
	Data       []A         `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

// CreateResponse is the response for the creation of multiple resources.
type CreateResponse[A any] struct {
	Data  []Response[A] `json:"data"`                                                          // List of the created resources or their respective error
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CreateResponse[A]) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, Response[A]{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}
