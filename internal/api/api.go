package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Api is the bot's small HTTP side: a health endpoint for the process
// supervisor.
type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	db  pinger
	now func() time.Time
}

type pinger interface {
	Ping(ctx context.Context) error
}

func NewApi(logger *zap.SugaredLogger, db pinger) *Api {
	a := &Api{
		logger: logger,
		db:     db,
		now:    time.Now,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	r := chi.NewMux()

	r.Use(a.requestLogger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", a.healthcheckHandler)

	a.handler = r
}

func (a *Api) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.logger.Debugw(r.URL.RequestURI(),
			"addr", r.RemoteAddr,
			"protocol", r.Proto,
			"method", r.Method,
		)
		next.ServeHTTP(w, r)
	})
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
