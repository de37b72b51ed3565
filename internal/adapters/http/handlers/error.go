package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

const ErrorTemplate = "erro"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorPage is the data of the error template.
type ErrorPage struct {
	Status  int
	Title   string
	Message string
}

// HandleError answers with the status mapped from the error kind. Clients
// asking for JSON get an ErrorResponse, everyone else the error page.
// Unexpected errors are attached to the context for the request logger and
// their message is not shown.
func HandleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Ocorreu um erro ao processar a sua solicitação."

	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		status = mapKindToHTTP(svcErr.Kind)
		if status != http.StatusNotFound {
			message = svcErr.Message
		}
	}
	if status == http.StatusNotFound {
		message = "O registro solicitado não foi encontrado."
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	render(c, status, message)
}

func NotFound(c *gin.Context) {
	HandleError(c, serviceerrors.NewNotFoundError("not found"))
}

func render(c *gin.Context, status int, message string) {
	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(status, ErrorResponse{Error: message})
	default:
		c.HTML(status, ErrorTemplate, ErrorPage{
			Status:  status,
			Title:   http.StatusText(status),
			Message: message,
		})
	}
	c.Abort()
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity, serviceerrors.KindValidation:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
