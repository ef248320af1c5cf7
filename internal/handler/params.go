package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cityfashion/internal/domain"
)

// parsePagination extracts offset/limit query params with sane defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, limit = 0, 20
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	return offset, limit
}

// parseReportFilters extracts date range, customer, and pagination filters
// from query params.
func parseReportFilters(c *gin.Context) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{}
	filters.Offset, filters.Limit = parsePagination(c)

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filters.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		// Include the whole end day.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filters.To = &end
	}
	if cidStr := c.Query("customer_id"); cidStr != "" {
		cid, err := uuid.Parse(cidStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'customer_id': must be a valid UUID")
		}
		filters.CustomerID = &cid
	}

	return filters, nil
}
