package errmsg

import "net/http"

var (
	RouteNotFound = NewStatusError(
		http.StatusNotFound,
		"route not found",
	)
	EchoInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"body must be a JSON object",
	)
)

func InternalServerError(err error) StatusError {
	return NewStatusError(
		http.StatusInternalServerError,
		"internal server error: "+err.Error(),
	)
}
