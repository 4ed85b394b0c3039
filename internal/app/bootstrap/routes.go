// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	diagnosticsfeature "github.com/dalemusser/mindwell/internal/app/features/diagnostics"
	hellofeature "github.com/dalemusser/mindwell/internal/app/features/hello"
	helplinesfeature "github.com/dalemusser/mindwell/internal/app/features/helplines"
	homefeature "github.com/dalemusser/mindwell/internal/app/features/home"
	quizfeature "github.com/dalemusser/mindwell/internal/app/features/quiz"
	resourcesfeature "github.com/dalemusser/mindwell/internal/app/features/resources"
	"github.com/dalemusser/mindwell/internal/app/system/metrics"
	"github.com/dalemusser/mindwell/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, and Startup hooks
// have completed. Mindwell mounts one feature router per endpoint group plus
// the Prometheus exposition, behind request logging, metrics, and an
// intentionally open CORS policy: this API serves anonymous informational
// content to browser frontends on arbitrary origins, so cross-origin access
// is not a security boundary here.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(requestlog.Middleware(logger))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", metrics.Handler())

	helloHandler := hellofeature.NewHandler(logger)
	hellofeature.MountRoutes(r, helloHandler)

	resourcesHandler := resourcesfeature.NewHandler(logger)
	resourcesfeature.MountRoutes(r, resourcesHandler)

	helplinesHandler := helplinesfeature.NewHandler(logger)
	helplinesfeature.MountRoutes(r, helplinesHandler)

	quizHandler := quizfeature.NewHandler(logger)
	quizfeature.MountRoutes(r, quizHandler)

	// Resolve the optional collaborator state once; the diagnostic endpoint
	// reports it rather than re-probing configuration per request.
	state := diagnosticsfeature.StateAbsent
	var db diagnosticsfeature.Database
	if appCfg.MongoURI != "" {
		if deps.MongoDatabase != nil {
			state = diagnosticsfeature.StateConnected
			db = diagnosticsfeature.NewMongoDatabase(deps.MongoDatabase)
		} else {
			state = diagnosticsfeature.StateUninitialized
		}
	}
	diagnosticsHandler := diagnosticsfeature.NewHandler(state, db, logger)
	diagnosticsfeature.MountRoutes(r, diagnosticsHandler)

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	return r, nil
}
