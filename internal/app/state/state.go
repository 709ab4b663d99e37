// internal/app/state/state.go

// Package state holds the authoritative in-memory dataset for a running
// session. Every mutation is applied here synchronously before the
// corresponding remote write is dispatched, so readers always observe fully
// applied local state. Remote failures never roll local state back; local
// and remote may diverge until the next full reload.
package state

import (
	"sync"

	"okrstudio/internal/domain/models"
)

// Dataset is the full collection set loaded at startup, either from the
// remote store or from the built-in demo data.
type Dataset struct {
	Divisions   []models.Division
	Teams       []models.Team
	Users       []models.User
	Objectives  []models.Objective
	CfrSessions []models.CfrSession
}

// Store guards the local dataset with a single RWMutex: mutations are
// serialized, and a reader never sees a half-applied change.
type Store struct {
	mu   sync.RWMutex
	data Dataset
}

// New returns a Store primed with the given dataset.
func New(data Dataset) *Store {
	return &Store{data: data}
}

/* Readers */

// Users returns a copy of the user list in load order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.data.Users...)
}

// Teams returns a copy of the team list.
func (s *Store) Teams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Team(nil), s.data.Teams...)
}

// Divisions returns a copy of the division list.
func (s *Store) Divisions() []models.Division {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Division(nil), s.data.Divisions...)
}

// Objectives returns a copy of the objective list, newest first.
func (s *Store) Objectives() []models.Objective {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Objective(nil), s.data.Objectives...)
}

// CfrSessions returns a copy of the CFR session list.
func (s *Store) CfrSessions() []models.CfrSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CfrSession(nil), s.data.CfrSessions...)
}

// UserByID looks a user up by id.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByName looks a user up by display name; used for default-actor
// selection at startup.
func (s *Store) UserByName(name string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.Name == name {
			return u, true
		}
	}
	return models.User{}, false
}

// TeamByID looks a team up by id.
func (s *Store) TeamByID(id string) (models.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// DivisionByID looks a division up by id.
func (s *Store) DivisionByID(id string) (models.Division, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.data.Divisions {
		if d.ID == id {
			return d, true
		}
	}
	return models.Division{}, false
}

// ObjectiveByID looks an objective up by id.
func (s *Store) ObjectiveByID(id string) (models.Objective, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.data.Objectives {
		if o.ID == id {
			return o, true
		}
	}
	return models.Objective{}, false
}

// CfrSessionByID looks a CFR session up by id.
func (s *Store) CfrSessionByID(id string) (models.CfrSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.CfrSessions {
		if c.ID == id {
			return c, true
		}
	}
	return models.CfrSession{}, false
}

// CfrSessionForMonth finds the unique session for (objectiveID, year,
// month), if one exists.
func (s *Store) CfrSessionForMonth(objectiveID string, year, month int) (models.CfrSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.CfrSessions {
		if c.ObjectiveID == objectiveID && c.Year == year && c.Month == month {
			return c, true
		}
	}
	return models.CfrSession{}, false
}

/* Writers */

// PutUser replaces the user with the same id, or appends when new.
func (s *Store) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Users {
		if s.data.Users[i].ID == u.ID {
			s.data.Users[i] = u
			return
		}
	}
	s.data.Users = append(s.data.Users, u)
}

// RemoveUser drops the user from the local collection. No cascading
// cleanup: teams and objectives keep any references to the removed id.
func (s *Store) RemoveUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Users = removeByID(s.data.Users, id, func(u models.User) string { return u.ID })
}

// PutTeam replaces the team with the same id, or appends when new.
func (s *Store) PutTeam(t models.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Teams {
		if s.data.Teams[i].ID == t.ID {
			s.data.Teams[i] = t
			return
		}
	}
	s.data.Teams = append(s.data.Teams, t)
}

// RemoveTeam drops the team; user teamIds referencing it stay dangling.
func (s *Store) RemoveTeam(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Teams = removeByID(s.data.Teams, id, func(t models.Team) string { return t.ID })
}

// PutDivision replaces the division with the same id, or appends when new.
func (s *Store) PutDivision(d models.Division) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Divisions {
		if s.data.Divisions[i].ID == d.ID {
			s.data.Divisions[i] = d
			return
		}
	}
	s.data.Divisions = append(s.data.Divisions, d)
}

// RemoveDivision drops the division; teams referencing it stay dangling.
func (s *Store) RemoveDivision(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Divisions = removeByID(s.data.Divisions, id, func(d models.Division) string { return d.ID })
}

// PrependObjective inserts a freshly created objective at the front so the
// newest objective lists first.
func (s *Store) PrependObjective(o models.Objective) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Objectives = append([]models.Objective{o}, s.data.Objectives...)
}

// ReplaceObjective swaps the stored objective with the same id.
func (s *Store) ReplaceObjective(o models.Objective) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Objectives {
		if s.data.Objectives[i].ID == o.ID {
			s.data.Objectives[i] = o
			return
		}
	}
}

// RemoveObjective drops the objective from the local collection.
func (s *Store) RemoveObjective(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Objectives = removeByID(s.data.Objectives, id, func(o models.Objective) string { return o.ID })
}

// PutCfrSession replaces the session with the same id, or appends when new.
func (s *Store) PutCfrSession(c models.CfrSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.CfrSessions {
		if s.data.CfrSessions[i].ID == c.ID {
			s.data.CfrSessions[i] = c
			return
		}
	}
	s.data.CfrSessions = append(s.data.CfrSessions, c)
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
