package api

import (
	"fmt"
	"net/http"
)

func (a *Api) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	a.logger.Debugw("client error", "path", r.URL.Path, "status", status)
	a.writeJSON(w, status, errorResponse{Error: message})
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	a.clientError(w, r, http.StatusNotFound, "only /healthcheck is served here")
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	a.clientError(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("%s is not supported, use GET", r.Method))
}
