// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	actorfeature "okrstudio/internal/app/features/actor"
	adminfeature "okrstudio/internal/app/features/admin"
	cfrfeature "okrstudio/internal/app/features/cfr"
	directoryfeature "okrstudio/internal/app/features/directory"
	healthfeature "okrstudio/internal/app/features/health"
	notificationsfeature "okrstudio/internal/app/features/notifications"
	okrsfeature "okrstudio/internal/app/features/okrs"
	profilefeature "okrstudio/internal/app/features/profile"
	"okrstudio/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and Startup have
// completed, so the runtime (state, coordinator, default actor) is ready.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies in production mode only; local dev runs over http.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	rt := deps.Runtime

	r := chi.NewRouter()

	// Global actor middleware: resolves the session's acting user into the
	// request context for every handler.
	r.Use(auth.LoadActor(actorfeature.Resolver{State: rt.State}))

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(rt.Coordinator.Offline, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Actor session: who am I, switch, reset.
	actorHandler := actorfeature.NewHandler(rt.State, rt.DefaultActorID, logger)
	r.Mount("/api/actor", actorfeature.Routes(actorHandler))

	// Org directory listings.
	directoryHandler := directoryfeature.NewHandler(rt.State, logger)
	r.Mount("/api/directory", directoryfeature.Routes(directoryHandler))

	// Transient notification drain.
	notificationsHandler := notificationsfeature.NewHandler(rt.Hub)
	r.Mount("/api/notifications", notificationsfeature.Routes(notificationsHandler))

	// Objectives and check-ins.
	okrsHandler := okrsfeature.NewHandler(rt.Coordinator, rt.DefaultActorID, logger)
	r.Mount("/api/okrs", okrsfeature.Routes(okrsHandler))

	// Monthly CFR sessions.
	cfrHandler := cfrfeature.NewHandler(rt.Coordinator, rt.DefaultActorID, logger)
	r.Mount("/api/cfr", cfrfeature.Routes(cfrHandler))

	// Own-profile management.
	profileHandler := profilefeature.NewHandler(rt.Coordinator, rt.State, rt.DefaultActorID, logger)
	r.Mount("/api/profile", profilefeature.Routes(profileHandler))

	// Org management (admin role enforced in the coordinator).
	adminHandler := adminfeature.NewHandler(rt.Coordinator, rt.DefaultActorID, logger)
	r.Mount("/api/admin", adminfeature.Routes(adminHandler))

	return r, nil
}
