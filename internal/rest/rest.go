package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/rest/response"
)

const serverErrorMessage = "terjadi kegagalan pada server kami"

// writeError translates a usecase error and answers with the matching
// status. Untranslated errors are logged and reported as server faults.
func writeError(c *gin.Context, err error) {
	translated := domain.Translate(err)

	var clientErr domain.ClientError
	if errors.As(translated, &clientErr) {
		c.JSON(clientErr.Status, response.Fail(clientErr.Message))
		return
	}

	status := getStatusCode(translated)
	if status >= http.StatusInternalServerError {
		logrus.Error(err)
		c.JSON(status, response.Error(serverErrorMessage))
		return
	}
	c.JSON(status, response.Fail(translated.Error()))
}

// getStatusCode will get the code of the error from the generic sentinels
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
