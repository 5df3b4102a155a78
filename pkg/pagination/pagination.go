package pagination

import (
	"net/http"
	"strconv"
)

// Params holds offset/limit pagination parameters extracted from query
// strings.
type Params struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FromRequest extracts pagination parameters from an HTTP request. Values
// outside [0, maxLimit] fall back to the defaults.
func FromRequest(r *http.Request, defaultLimit, maxLimit int) Params {
	p := Params{Offset: 0, Limit: defaultLimit}

	if v := r.URL.Query().Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset >= 0 {
			p.Offset = offset
		}
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 && limit <= maxLimit {
			p.Limit = limit
		}
	}

	return p
}

// Result wraps a paginated response.
type Result[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"total_count"`
	Offset     int  `json:"offset"`
	Limit      int  `json:"limit"`
	HasNext    bool `json:"has_next"`
}

// NewResult creates a paginated result.
func NewResult[T any](data []T, totalCount int, params Params) Result[T] {
	if data == nil {
		data = []T{}
	}
	return Result[T]{
		Data:       data,
		TotalCount: totalCount,
		Offset:     params.Offset,
		Limit:      params.Limit,
		HasNext:    params.Offset+len(data) < totalCount,
	}
}
