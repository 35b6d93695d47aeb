package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Echo responds with the message path segment as a plain text body.
func Echo(c *gin.Context) {
	c.String(http.StatusOK, c.Param("message"))
}
