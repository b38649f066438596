package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/riandyrn/otelchi"

	"github.com/getzep/annotext/internal"
	"github.com/getzep/annotext/pkg/auth"
	"github.com/getzep/annotext/pkg/models"
	"github.com/getzep/annotext/pkg/server/apihandlers"
	"github.com/getzep/annotext/pkg/server/webhandlers"
	"github.com/getzep/annotext/pkg/web"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) (*http.Server, error) {
	router, err := setupRouter(appState)
	if err != nil {
		return nil, err
	}
	cfg := appState.Config.Server
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}, nil
}

func setupRouter(appState *models.AppState) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(otelchi.Middleware(internal.ServiceName, otelchi.WithChiRoutes(router)))
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	if limit := appState.Config.Server.MaxRequestSize; limit > 0 {
		router.Use(middleware.RequestSize(limit))
	}

	var verifier func(http.Handler) http.Handler
	if appState.Config.Auth.Required {
		var err error
		verifier, err = auth.JWTVerifier(appState.Config)
		if err != nil {
			return nil, err
		}
		log.Info("JWT authentication required")
	}

	router.Route("/api/v1", func(r chi.Router) {
		if verifier != nil {
			r.Use(verifier)
			r.Use(jwtauth.Authenticator)
		}
		r.Post("/annotate", apihandlers.AnnotateHandler(appState))
		r.Post("/vectorize", apihandlers.VectorizeHandler(appState))
	})

	if appState.Config.Server.WebEnabled {
		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, web.AnnotatePath, http.StatusFound)
		})
		router.Get(web.AnnotatePath, webhandlers.GetAnnotatePageHandler(appState))
		router.Post(web.AnnotatePath, webhandlers.PostAnnotatePageHandler(appState))
		router.Get(web.VectorizePath, webhandlers.GetVectorizePageHandler(appState))
		router.Post(web.VectorizePath, webhandlers.PostVectorizePageHandler(appState))
		router.NotFound(webhandlers.NotFoundHandler())
	}

	return router, nil
}
