// Package auth tracks the acting user for a browser session.
//
// There are no credentials: any person in the directory can be selected as
// the acting user, and every permission check evaluates against that actor.
// The session cookie carries only the actor's id; the full user record is
// resolved from local state on each request.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	SessionName = "okrstudio-session"

	actorIDKey = "actor_id"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

type ctxKey string

const actorKey ctxKey = "actor"

// ActorResolver turns a stored actor id into a full user record.
// Satisfied by the state store.
type ActorResolver interface {
	ActorByID(id string) (Actor, bool)
}

// Actor is the acting user as the HTTP layer needs it. Kept minimal so
// this package does not depend on the domain models.
type Actor struct {
	ID   string
	Name string
	Role string
}

// CurrentActor returns the actor injected by LoadActor and a found flag.
func CurrentActor(r *http.Request) (Actor, bool) {
	a, ok := r.Context().Value(actorKey).(Actor)
	return a, ok
}

// LoadActor resolves the session's actor id against the resolver and
// injects the actor into request context. A stale id (user deleted since
// the cookie was written) or an undecodable cookie simply leaves the
// request without an actor; handlers fall back to the default actor.
func LoadActor(resolve ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if Store == nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := Store.Get(r, SessionName)
			if err != nil {
				// A cookie signed with a rotated key decodes to an error
				// but still yields a usable empty session. Anything else
				// means continue without an actor.
				if _, ok := err.(securecookie.Error); !ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			if id := getString(sess, actorIDKey); id != "" {
				if a, ok := resolve.ActorByID(id); ok {
					r = withActor(r, a)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetActor persists the actor id into the session cookie.
func SetActor(w http.ResponseWriter, r *http.Request, actorID string) error {
	if Store == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values[actorIDKey] = actorID
	return sess.Save(r, w)
}

// ClearActor removes the stored actor id, dropping the session back to the
// default actor on the next request.
func ClearActor(w http.ResponseWriter, r *http.Request) error {
	if Store == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, _ := Store.Get(r, SessionName)
	delete(sess.Values, actorIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// InitSessionStore initializes the global session Store. The secure flag
// controls Secure cookies and SameSite mode: None for cross-site HTTPS in
// production, Lax for local dev over http.
func InitSessionStore(sessionKey, domain string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts
	Store = store

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return nil
}

// helpers

func withActor(r *http.Request, a Actor) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorKey, a))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
