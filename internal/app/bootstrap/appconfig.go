// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to this application.
type AppConfig struct {
	// Remote document store configuration. An empty base URL starts the
	// service in offline mode on the built-in demo dataset.
	DocstoreBaseURL  string // documents root, e.g. https://firestore.googleapis.com/v1/projects/p/databases/(default)/documents
	DocstoreAPIKey   string // appended as the key query parameter on every request
	DocstorePageSize int    // page size for collection listings

	// Session management configuration
	SessionKey    string // secret key for signing session cookies
	SessionDomain string // cookie domain (blank means current host)

	// Acting-user defaults
	DefaultActorName string // display name selected when a session has no stored actor

	// First-run behavior
	SeedOnEmpty bool // push the demo dataset to an empty remote store
}
