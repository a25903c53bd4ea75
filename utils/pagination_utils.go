package utils

import (
	"math"
	"strconv"
)

// Defaults for the admin list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// ParsePagination coerces page/limit query strings to positive integers,
// falling back to the defaults when a value is absent or not a number.
func ParsePagination(pageStr, limitStr string) (int, int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// TotalPages returns the page count for a total item count at a page size.
func TotalPages(total, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}
