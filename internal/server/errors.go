package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/storage"
)

// httpError is an error whose message is safe to show to the caller.
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string {
	return e.message
}

var (
	errUnauthorized      = &httpError{http.StatusUnauthorized, "Missing or invalid token"}
	errBadLogin          = &httpError{http.StatusUnauthorized, "Bad login"}
	errMissingJSON       = &httpError{http.StatusBadRequest, "Missing JSON in request"}
	errUnknownCollection = &httpError{http.StatusNotFound, "Unknown collection"}
	errBadPeriod         = &httpError{http.StatusBadRequest, "Unknown period, use week, month or year"}
	errBadReference      = &httpError{http.StatusBadRequest, "Referenced record not found"}
)

const notUniqueMessage = "Name value must be unique"

func statusOf(err error) (int, string) {
	var he *httpError
	switch {
	case errors.As(err, &he):
		return he.status, he.message
	case errors.Is(err, storage.ErrNotUnique):
		return http.StatusBadRequest, notUniqueMessage
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "Not found"
	}
	return http.StatusInternalServerError, "Internal server error"
}

func respondError(c *gin.Context, err error) {
	status, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": message})
}

func abortWithError(c *gin.Context, err error) {
	respondError(c, err)
	c.Abort()
}
