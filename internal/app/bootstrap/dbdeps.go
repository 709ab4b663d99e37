// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/state"
	"okrstudio/internal/app/store/docstore"
	"okrstudio/internal/app/store/seed"
	"okrstudio/internal/app/system/notify"
)

// Runtime holds the pieces assembled during Startup, after the initial
// data load decides between connected and offline mode. It hangs off
// DBDeps as a pointer because the hook signatures pass deps by value.
type Runtime struct {
	State          *state.Store
	Coordinator    *coordinator.Coordinator
	Hub            *notify.Hub
	DefaultActorID string
}

// DBDeps holds backend dependencies for the app. Docstore is nil when no
// base URL is configured (offline mode).
type DBDeps struct {
	Docstore *docstore.Client
	Stores   seed.Stores
	Runtime  *Runtime
}
