package httperr

import (
	"net/http"
	"time"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Respond writes err as an apperrors.ErrorResponse with the HTTP status that
// matches its kind. Unclassified errors become 500s with their message
// hidden behind a generic one.
func Respond(c *gin.Context, err error) {
	appErr := apperrors.AsError(err)
	if appErr == nil {
		logrus.Errorf("unhandled error on %s: %v", c.FullPath(), err)
		write(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	write(c, StatusFor(appErr.Kind), appErr.Message)
}

// StatusFor maps an error kind to its stable HTTP status.
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindBusiness:
		return http.StatusUnprocessableEntity
	case apperrors.KindBadRequest:
		return http.StatusBadRequest
	case apperrors.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func write(c *gin.Context, status int, message string) {
	c.JSON(status, apperrors.ErrorResponse{
		APIPath:      c.Request.URL.Path,
		ErrorCode:    status,
		ErrorMessage: message,
		ErrorTime:    time.Now().UTC(),
	})
}

// BadRequest is the handlers' shortcut for binding failures.
func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, message)
}
