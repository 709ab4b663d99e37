// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	cfrstore "okrstudio/internal/app/store/cfr"
	divisionstore "okrstudio/internal/app/store/divisions"
	"okrstudio/internal/app/store/docstore"
	objectivestore "okrstudio/internal/app/store/objectives"
	"okrstudio/internal/app/store/seed"
	teamstore "okrstudio/internal/app/store/teams"
	userstore "okrstudio/internal/app/store/users"
	"okrstudio/internal/app/system/notify"
)

// ConnectDB builds the remote document store client and the per-collection
// stores. No network traffic happens here; the initial load (and the
// connected/offline decision) is Startup's job.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{
		Runtime: &Runtime{Hub: notify.NewHub(logger)},
	}

	if appCfg.DocstoreBaseURL == "" {
		logger.Info("no document store configured; offline mode")
		return deps, nil
	}

	httpc := &http.Client{Timeout: 30 * time.Second}
	client := docstore.New(appCfg.DocstoreBaseURL, appCfg.DocstoreAPIKey, appCfg.DocstorePageSize, httpc, logger)

	deps.Docstore = client
	deps.Stores = seed.Stores{
		Divisions:  divisionstore.New(client),
		Teams:      teamstore.New(client),
		Users:      userstore.New(client),
		Objectives: objectivestore.New(client),
		Cfr:        cfrstore.New(client),
	}
	return deps, nil
}

// EnsureSchema is a no-op: the document store is schemaless and
// collections appear on first write.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
