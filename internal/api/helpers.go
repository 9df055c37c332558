package api

import (
	"encoding/json"
	"net/http"
	"time"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Checked  string `json:"checked_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newHealthResponse(dbErr error, now time.Time) (int, healthResponse) {
	res := healthResponse{
		Status:   "ok",
		Database: "up",
		Checked:  now.UTC().Format(time.RFC3339),
	}
	if dbErr != nil {
		res.Status = "unavailable"
		res.Database = "down"
		return http.StatusServiceUnavailable, res
	}

	return http.StatusOK, res
}

func (a *Api) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	js, err := json.Marshal(data)
	if err != nil {
		a.logger.Errorw("failed to encode response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(js, '\n')); err != nil {
		a.logger.Debugw("failed to write response", "err", err)
	}
}
