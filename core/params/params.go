package params

import (
	"strconv"

	"slotswapper/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams is the common paging input parsed from the query string.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext parses page/page_size with sane bounds.
func FromContext(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
	}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		p.PageSize = v
		if p.PageSize > constants.MaxPageSize {
			p.PageSize = constants.MaxPageSize
		}
	}
	return p
}
