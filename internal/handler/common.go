package handler // handler contains the HTTP endpoint implementations

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// paramID parses the :id route parameter as an unsigned integer.
func paramID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// getUserID extracts the authenticated user ID stored in the context
// by the JWT middleware.  JWT numeric claims decode as float64.
func getUserID(c echo.Context) (uint64, bool) {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v), true
	case uint64:
		return v, true
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
