package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-token-gate/internal/api/shared/constants"
)

// ListRunsQueryParams holds query parameters for GET /runs
type ListRunsQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListRunsQuery parses query parameters for GET /runs
func ParseListRunsQuery(c *gin.Context) (*ListRunsQueryParams, error) {
	var params ListRunsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_RUNS_LIMIT
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		return nil, fmt.Errorf("offset must not be negative")
	}

	return &params, nil
}

// TrendQueryParams holds query parameters for GET /profiles/:handle/trend
type TrendQueryParams struct {
	Days int `form:"days,default=7"`
}

// ParseTrendQuery parses query parameters for GET /profiles/:handle/trend
func ParseTrendQuery(c *gin.Context) (*TrendQueryParams, error) {
	var params TrendQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Days < 1 || params.Days > constants.MAX_TREND_DAYS {
		return nil, fmt.Errorf("days must be between 1 and %d", constants.MAX_TREND_DAYS)
	}

	return &params, nil
}
