package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/schema"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// abortWithInternalError logs the cause and answers 500 with a generic message.
func abortWithInternalError(c *gin.Context, message string, err error) {
	log.WithError(err).WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error(message)
	abortWithError(c, http.StatusInternalServerError, message)
}

// abortWithValidationError answers 400, adding the per-field issues when err is a schema error.
func abortWithValidationError(c *gin.Context, message string, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": message,
			"errors":  verr.Issues,
		})
		return
	}
	abortWithError(c, http.StatusBadRequest, message)
}

// readBody returns the raw request body for the schema parsers.
func readBody(c *gin.Context) ([]byte, error) {
	return c.GetRawData()
}
