package api

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

// healthcheckHandler reports 503 while the reminder store does not answer.
func (a *Api) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	err := a.db.Ping(ctx)
	if err != nil {
		a.logger.Errorw("healthcheck failed", "err", err)
	}

	status, res := newHealthResponse(err, a.now())
	a.writeJSON(w, status, res)
}
