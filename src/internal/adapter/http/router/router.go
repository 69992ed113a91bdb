package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/middleware"
)

type AccountRouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

// New builds the API handler. /health is open; every account route sits
// behind authMiddleware when one is given.
func New(
	accountController AccountRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}
	if accountController != nil {
		accountController.RegisterRoutes(api)
	}

	return otelhttp.NewHandler(r, "banking-api")
}
