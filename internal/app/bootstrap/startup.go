// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/state"
	"okrstudio/internal/app/store/seed"
	"okrstudio/internal/app/system/notify"
)

// Startup performs the initial data load and assembles the runtime. The
// outcome decides the mode for the rest of the process:
//
//   - connected: local state mirrors the remote store, and mutations
//     dispatch best-effort background writes
//   - offline: the remote store is unreachable (or unconfigured), local
//     state holds the demo dataset, and nothing is persisted
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	data, offline := loadDataset(ctx, deps, appCfg, logger)

	st := state.New(data)

	var remote *coordinator.Remote
	if !offline {
		remote = &coordinator.Remote{
			Users:      deps.Stores.Users,
			Teams:      deps.Stores.Teams,
			Divisions:  deps.Stores.Divisions,
			Objectives: deps.Stores.Objectives,
			Cfr:        deps.Stores.Cfr,
		}
	}

	rt := deps.Runtime
	rt.State = st
	rt.Coordinator = coordinator.New(st, remote, rt.Hub, logger)
	rt.DefaultActorID = pickDefaultActor(st, appCfg.DefaultActorName, logger)

	logger.Info("startup complete",
		zap.Bool("offline", offline),
		zap.Int("users", len(data.Users)),
		zap.Int("objectives", len(data.Objectives)),
		zap.String("default_actor", rt.DefaultActorID))
	return nil
}

// loadDataset fetches all collections from the remote store. Any fetch
// failure drops the whole process into offline demo mode; a reachable but
// empty store is seeded with the demo dataset when configured.
func loadDataset(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) (state.Dataset, bool) {
	if deps.Docstore == nil {
		return seed.Dataset(), true
	}

	fallback := func(err error) (state.Dataset, bool) {
		logger.Warn("initial load failed; falling back to demo data", zap.Error(err))
		deps.Runtime.Hub.Notify(
			"Could not reach the server. Working with demo data; changes will not be saved.",
			notify.Error)
		return seed.Dataset(), true
	}

	users, err := deps.Stores.Users.ListAll(ctx)
	if err != nil {
		return fallback(err)
	}

	if len(users) == 0 && appCfg.SeedOnEmpty {
		demo := seed.Dataset()
		if err := seed.Remote(ctx, deps.Stores, demo, logger); err != nil {
			// Partial seeds are not rolled back; the store keeps whatever
			// was written and local state runs on the full demo dataset.
			logger.Warn("seeding failed", zap.Error(err))
			deps.Runtime.Hub.Notify("Seeding the server failed part-way; it may hold partial data.", notify.Error)
			return demo, false
		}
		// Re-fetch so local state mirrors what the store accepted.
		users, err = deps.Stores.Users.ListAll(ctx)
		if err != nil {
			return fallback(err)
		}
	}

	divisions, err := deps.Stores.Divisions.ListAll(ctx)
	if err != nil {
		return fallback(err)
	}
	teams, err := deps.Stores.Teams.ListAll(ctx)
	if err != nil {
		return fallback(err)
	}
	objectives, err := deps.Stores.Objectives.ListAll(ctx)
	if err != nil {
		return fallback(err)
	}
	sessions, err := deps.Stores.Cfr.ListAll(ctx)
	if err != nil {
		return fallback(err)
	}

	return state.Dataset{
		Divisions:   divisions,
		Teams:       teams,
		Users:       users,
		Objectives:  objectives,
		CfrSessions: sessions,
	}, false
}

// pickDefaultActor resolves the configured default actor name, falling
// back to the first user in load order.
func pickDefaultActor(st *state.Store, name string, logger *zap.Logger) string {
	if u, ok := st.UserByName(name); ok {
		return u.ID
	}
	users := st.Users()
	if len(users) == 0 {
		logger.Warn("no users loaded; requests without a session actor will fail")
		return ""
	}
	logger.Warn("configured default actor not found; using the first user",
		zap.String("configured", name),
		zap.String("fallback", users[0].Name))
	return users[0].ID
}
