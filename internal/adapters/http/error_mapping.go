package httpadapter

import (
	"net/http"

	"github.com/malhotra-vikas/earnings-press-service/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrExtraction):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrModelConfig),
		domain.IsKind(err, domain.ErrModelInvocation),
		domain.IsKind(err, domain.ErrSchemaValidation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// publicErrorMessage keeps internal detail out of responses: the client gets
// a short category-level message, the full error goes to the log.
func publicErrorMessage(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrExtraction):
		return "could not extract readable text from the uploaded file"
	case domain.IsKind(err, domain.ErrInvalidInput):
		return "invalid request input"
	case domain.IsKind(err, domain.ErrModelConfig):
		return "model credential is not configured"
	case domain.IsKind(err, domain.ErrSchemaValidation),
		domain.IsKind(err, domain.ErrModelInvocation):
		return "model call failed, please retry"
	default:
		return "internal error"
	}
}
