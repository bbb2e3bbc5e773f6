package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

// fail converts an error into the HTTP response for it. what names the
// resource in messages, e.g. "News".
func fail(c *gin.Context, what string, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, errs.ErrUnsupportedMediaType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type", "details": err.Error()})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, errs.ErrUploadFailed):
		logger.Errorf("%s: %v", what, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file", "details": err.Error()})
	default:
		logger.Errorf("%s: %v", what, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process " + what, "details": err.Error()})
	}
	_ = c.Error(err)
}

// paramID parses the :id path parameter. A malformed id can never match a
// record, so it is reported as not found.
func paramID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrNotFound
	}
	return id, nil
}

func deleted(c *gin.Context, what string, id int64) {
	c.JSON(http.StatusOK, gin.H{"message": what + " deleted successfully", "id": id})
}
