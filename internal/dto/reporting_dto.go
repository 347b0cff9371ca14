package dto

// SalesReportParams defines query parameters for the sales analytics view.
type SalesReportParams struct {
	FilterParams
	Granularity string `form:"granularity"` // day, week or month
	Bins        int    `form:"bins" binding:"omitempty,min=1,max=200"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
