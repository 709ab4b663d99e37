// Package coordinator applies every mutation in the system.
//
// Each operation follows the same shape: resolve the actor, authorize,
// validate, apply the change to local state synchronously, then dispatch
// the remote write in the background. The local change is authoritative;
// a failed remote write is reported through the notifier but never rolled
// back, so local and remote may diverge until the next full reload.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"okrstudio/internal/app/state"
	cfrstore "okrstudio/internal/app/store/cfr"
	divisionstore "okrstudio/internal/app/store/divisions"
	objectivestore "okrstudio/internal/app/store/objectives"
	teamstore "okrstudio/internal/app/store/teams"
	userstore "okrstudio/internal/app/store/users"
	"okrstudio/internal/app/system/notify"
	"okrstudio/internal/domain/models"
)

// Sentinel errors; operations wrap these with detail.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalid       = errors.New("invalid input")
)

const persistTimeout = 15 * time.Second

// Remote bundles the per-collection remote stores. A nil Remote puts the
// coordinator in offline mode: mutations apply locally and no writes are
// dispatched.
type Remote struct {
	Users      *userstore.Store
	Teams      *teamstore.Store
	Divisions  *divisionstore.Store
	Objectives *objectivestore.Store
	Cfr        *cfrstore.Store
}

// Coordinator serializes mutations through the state store and owns
// best-effort remote persistence.
type Coordinator struct {
	state    *state.Store
	remote   *Remote
	notifier notify.Notifier
	logger   *zap.Logger

	// Injectable for tests: clock and background executor.
	now func() time.Time
	run func(func())
}

// New returns a Coordinator using the real clock and a goroutine per
// background write.
func New(st *state.Store, remote *Remote, n notify.Notifier, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		state:    st,
		remote:   remote,
		notifier: n,
		logger:   logger,
		now:      time.Now,
		run:      func(f func()) { go f() },
	}
}

// Offline reports whether remote persistence is disabled.
func (c *Coordinator) Offline() bool { return c.remote == nil }

// actor resolves the acting user or reports ErrNotFound.
func (c *Coordinator) actor(actorID string) (models.User, error) {
	u, ok := c.state.UserByID(actorID)
	if !ok {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, actorID)
	}
	return u, nil
}

// persist runs a remote write in the background. Failures surface as a
// notification and a log entry; the already-applied local change stands.
func (c *Coordinator) persist(op string, fn func(ctx context.Context) error) {
	if c.remote == nil {
		return
	}
	c.run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			c.logger.Warn("remote persistence failed",
				zap.String("op", op),
				zap.Error(err))
			c.notifier.Notify("Could not save to the server. Your change is kept locally.", notify.Error)
		}
	})
}
