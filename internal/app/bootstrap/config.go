// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for OKR Studio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: docstore_base_url, session_key, etc.
//   - Environment variables: OKRSTUDIO_DOCSTORE_BASE_URL, etc.
//   - Command-line flags: --docstore_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "docstore_base_url", Default: "", Desc: "Document store documents root URL (blank runs offline on demo data)"},
	{Name: "docstore_api_key", Default: "", Desc: "Document store API key"},
	{Name: "docstore_page_size", Default: 300, Desc: "Page size for collection listings"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "default_actor", Default: "Dana Park", Desc: "Display name of the default acting user"},

	{Name: "seed_on_empty", Default: true, Desc: "Seed the demo dataset into an empty remote store on startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "OKRSTUDIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DocstoreBaseURL:  appValues.String("docstore_base_url"),
		DocstoreAPIKey:   appValues.String("docstore_api_key"),
		DocstorePageSize: appValues.Int("docstore_page_size"),

		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),

		DefaultActorName: appValues.String("default_actor"),

		SeedOnEmpty: appValues.Bool("seed_on_empty"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// backends are built.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.DocstoreBaseURL != "" {
		u, err := url.Parse(appCfg.DocstoreBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid docstore_base_url %q", appCfg.DocstoreBaseURL)
		}
	} else {
		logger.Warn("docstore_base_url is blank; running offline on demo data")
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}
	if appCfg.DocstorePageSize <= 0 {
		return fmt.Errorf("docstore_page_size must be positive, got %d", appCfg.DocstorePageSize)
	}
	return nil
}
