package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Accepted status range. Informational codes other than 101 are excluded
// since net/http follows them with its own final response.
const (
	minStatus = 100
	maxStatus = 599
)

// notFoundBody matches gin's built-in 404 body.
const notFoundBody = "404 page not found"

// Status responds with the status code named by the path segment and that
// code as the body. Non-numeric segments are treated as an unmatched route;
// codes that cannot be sent as a final response get 400.
func Status(c *gin.Context) {
	raw := c.Param("status")
	if !isDigits(raw) {
		NotFound(c)
		return
	}

	code, err := strconv.Atoi(raw)
	if err != nil || !finalStatus(code) {
		c.String(http.StatusBadRequest, "invalid status code: %s", raw)
		return
	}

	// gin drops the body for 101, 204 and 304.
	c.String(code, strconv.Itoa(code))
}

// NotFound writes the same response as an unknown route.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, notFoundBody)
}

func finalStatus(code int) bool {
	if code < minStatus || code > maxStatus {
		return false
	}
	return code >= http.StatusOK || code == http.StatusSwitchingProtocols
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
