// Package seed provides the built-in demo dataset and first-run remote
// seeding. The demo data serves two purposes: it is pushed to an empty
// remote store on first boot, and it is the offline fallback when the
// remote store is unreachable.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"okrstudio/internal/app/state"
	cfrstore "okrstudio/internal/app/store/cfr"
	divisionstore "okrstudio/internal/app/store/divisions"
	objectivestore "okrstudio/internal/app/store/objectives"
	teamstore "okrstudio/internal/app/store/teams"
	userstore "okrstudio/internal/app/store/users"
	"okrstudio/internal/domain/models"
)

// DefaultActorName is the display name selected as the acting user when a
// session has no stored actor.
const DefaultActorName = "Dana Park"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dataset returns the demo organisation: two divisions, three teams, a
// full rank ladder (CEO, division head, tech lead, admin office head,
// director), and a quarter of in-flight objectives.
func Dataset() state.Dataset {
	divisions := []models.Division{
		{ID: "div-product", Name: "Product Division", Description: "Builds and operates the product line."},
		{ID: "div-mgmt", Name: "Management Support Office", Description: "Finance, people, and office operations."},
	}

	teams := []models.Team{
		{
			ID: "team-platform", Name: "Platform Team", Code: "PLT",
			Description: "Core services and infrastructure.",
			DivisionID:  "div-product", DivisionName: "Product Division",
			Members: []string{"u-dana", "u-marcus", "u-tom"},
		},
		{
			ID: "team-growth", Name: "Growth Team", Code: "GRW",
			Description: "Acquisition and activation.",
			DivisionID:  "div-product", DivisionName: "Product Division",
			Members: []string{"u-jonah", "u-riley"},
		},
		{
			ID: "team-people", Name: "People Team", Code: "PPL",
			Description: "Hiring and culture.",
			DivisionID:  "div-mgmt", DivisionName: "Management Support Office",
			Members: []string{"u-priya", "u-sofia"},
		},
	}

	users := []models.User{
		{
			ID: "u-evelyn", Name: "Evelyn Cho", Email: "evelyn@okrstudio.dev",
			Role: models.RoleAdmin, Position: models.PositionCEO,
			DivisionID: "div-product", DivisionName: "Product Division",
			DefaultTeamID: "team-platform", TeamIDs: []string{"team-platform"},
			Timezone: "Asia/Seoul",
		},
		{
			ID: "u-dana", Name: "Dana Park", Email: "dana@okrstudio.dev",
			Role: models.RoleAdmin, Position: models.PositionDivisionHead,
			DivisionID: "div-product", DivisionName: "Product Division",
			DefaultTeamID: "team-platform", TeamIDs: []string{"team-platform"},
			Timezone: "Asia/Seoul",
		},
		{
			ID: "u-marcus", Name: "Marcus Webb", Email: "marcus@okrstudio.dev",
			Role: models.RoleMember, Position: models.PositionTechLead,
			DivisionID: "div-product", DivisionName: "Product Division",
			DefaultTeamID: "team-platform", TeamIDs: []string{"team-platform"},
			Timezone: "Europe/London",
		},
		{
			ID: "u-priya", Name: "Priya Natarajan", Email: "priya@okrstudio.dev",
			Role: models.RoleMember, Position: models.PositionAdminOfficeHead,
			DivisionID: "div-mgmt", DivisionName: "Management Support Office",
			DefaultTeamID: "team-people", TeamIDs: []string{"team-people"},
			Timezone: "Asia/Kolkata",
		},
		{
			ID: "u-jonah", Name: "Jonah Reyes", Email: "jonah@okrstudio.dev",
			Role: models.RoleMember, JobTitle: models.JobTitleDirector,
			DivisionID: "div-product", DivisionName: "Product Division",
			DefaultTeamID: "team-growth", TeamIDs: []string{"team-growth"},
			Timezone: "America/New_York",
		},
		{
			ID: "u-riley", Name: "Riley Cho", Email: "riley@okrstudio.dev",
			Role: models.RoleMember,
			DivisionID: "div-product", DivisionName: "Product Division",
			DefaultTeamID: "team-growth", TeamIDs: []string{"team-growth"},
			Timezone: "Asia/Seoul",
		},
		{
			ID: "u-tom", Name: "Tom Iversen", Email: "tom@okrstudio.dev",
			Role: models.RoleMember,
			DivisionID: "div-product", DivisionName: "Product Division",
			DefaultTeamID: "team-platform", TeamIDs: []string{"team-platform"},
			Timezone: "Europe/Oslo",
		},
		{
			ID: "u-sofia", Name: "Sofia Marin", Email: "sofia@okrstudio.dev",
			Role: models.RoleMember,
			DivisionID: "div-mgmt", DivisionName: "Management Support Office",
			DefaultTeamID: "team-people", TeamIDs: []string{"team-people"},
			Timezone: "Europe/Madrid",
		},
	}

	objectives := []models.Objective{
		{
			ID:              "obj-platform-q4",
			Title:           "Make the platform boringly reliable",
			Description:     "Cut incident load so product teams ship without firefighting.",
			OwnerID:         "u-dana",
			TeamID:          "team-platform",
			Year:            2025,
			Quarter:         4,
			Status:          models.StatusInProgress,
			IsTeamObjective: true,
			KeyResults: []models.KeyResult{
				{
					ID: "kr-uptime", Title: "Reach 99.95% API uptime",
					Progress: 60, OwnerID: "u-marcus",
					DueDate: date(2025, time.December, 19), Confidence: 7,
					ProgressUpdates: []models.ProgressUpdate{
						{ID: "pu-uptime-1", KrID: "kr-uptime", Value: 40, Comment: "Retired the flaky queue consumer.", Date: date(2025, time.October, 17)},
						{ID: "pu-uptime-2", KrID: "kr-uptime", Value: 60, Comment: "Zero paging incidents last two weeks.", Date: date(2025, time.November, 7)},
					},
				},
				{
					ID: "kr-oncall", Title: "Halve weekly on-call pages",
					Progress: 35, OwnerID: "u-tom",
					DueDate: date(2025, time.December, 31), Confidence: 5,
					ProgressUpdates: []models.ProgressUpdate{
						{ID: "pu-oncall-1", KrID: "kr-oncall", Value: 35, Comment: "Noise filters live; real pages still high.", Date: date(2025, time.October, 24)},
					},
				},
			},
			Changelog: []models.ChangelogEntry{
				{Timestamp: date(2025, time.October, 2), UserID: "u-dana", Change: "Objective created."},
			},
		},
		{
			ID:              "obj-growth-q4",
			Title:           "Double activated signups",
			Description:     "Move activation from 18% to 36% of new signups.",
			OwnerID:         "u-jonah",
			TeamID:          "team-growth",
			Year:            2025,
			Quarter:         4,
			Status:          models.StatusInProgress,
			IsTeamObjective: true,
			KeyResults: []models.KeyResult{
				{
					ID: "kr-onboarding", Title: "Ship the guided onboarding flow",
					Progress: 80, OwnerID: "u-riley",
					DueDate: date(2025, time.November, 28), Confidence: 8,
					ProgressUpdates: []models.ProgressUpdate{
						{ID: "pu-onb-1", KrID: "kr-onboarding", Value: 80, Comment: "Beta live for 20% of signups.", Date: date(2025, time.November, 5)},
					},
				},
				{
					ID: "kr-activation", Title: "Lift day-7 activation to 36%",
					Progress: 25, OwnerID: "u-jonah",
					DueDate: date(2025, time.December, 31), Confidence: 4,
					ProgressUpdates: []models.ProgressUpdate{
						{ID: "pu-act-1", KrID: "kr-activation", Value: 25, Comment: "22.5% this week; beta cohort trending up.", Date: date(2025, time.November, 6)},
					},
				},
			},
			Changelog: []models.ChangelogEntry{
				{Timestamp: date(2025, time.October, 6), UserID: "u-jonah", Change: "Objective created."},
			},
		},
		{
			ID:          "obj-marcus-personal",
			Title:       "Level up incident review practice",
			Description: "Personal goal: make reviews teach, not blame.",
			OwnerID:     "u-marcus",
			TeamID:      "team-platform",
			Year:        2025,
			Quarter:     4,
			Status:      models.StatusPlanned,
			KeyResults: []models.KeyResult{
				{
					ID: "kr-reviews", Title: "Run 6 blameless reviews with written follow-ups",
					Progress: 0, OwnerID: "u-marcus",
					DueDate: date(2025, time.December, 31), Confidence: 6,
				},
			},
			Changelog: []models.ChangelogEntry{
				{Timestamp: date(2025, time.October, 13), UserID: "u-marcus", Change: "Objective created."},
			},
		},
	}

	cfrSessions := []models.CfrSession{
		{
			ID:           "cfr-platform-2025-10",
			ObjectiveID:  "obj-platform-q4",
			AuthorID:     "u-dana",
			Year:         2025,
			Quarter:      4,
			Month:        10,
			WhatHappened: "<p>Queue consumer rewrite landed; uptime climbed to 99.9%.</p>",
			Challenges:   "<p>On-call pages are still dominated by one legacy cron.</p>",
			NextPlans:    "<p>Kill the legacy cron and move its jobs to the scheduler.</p>",
			Recognitions: []models.Recognition{
				{MemberID: "u-marcus", Comment: "Drove the consumer rewrite end to end."},
			},
			ManagerFeedback: "<p>Good focus. Keep the cron migration scoped to one sprint.</p>",
			CreatedAt:       date(2025, time.November, 3),
			UpdatedAt:       date(2025, time.November, 4),
		},
	}

	return state.Dataset{
		Divisions:   divisions,
		Teams:       teams,
		Users:       users,
		Objectives:  objectives,
		CfrSessions: cfrSessions,
	}
}

// Stores bundles the per-collection remote stores needed for seeding.
type Stores struct {
	Divisions  *divisionstore.Store
	Teams      *teamstore.Store
	Users      *userstore.Store
	Objectives *objectivestore.Store
	Cfr        *cfrstore.Store
}

// Remote pushes the dataset to the remote store, collection by collection
// in dependency order. Seeding is not atomic: a failure aborts the
// remaining collections and leaves whatever was already written.
func Remote(ctx context.Context, s Stores, data state.Dataset, logger *zap.Logger) error {
	logger.Info("seeding remote store",
		zap.Int("divisions", len(data.Divisions)),
		zap.Int("teams", len(data.Teams)),
		zap.Int("users", len(data.Users)),
		zap.Int("objectives", len(data.Objectives)),
		zap.Int("cfr_sessions", len(data.CfrSessions)))

	if err := s.Divisions.Seed(ctx, data.Divisions); err != nil {
		return fmt.Errorf("seed divisions: %w", err)
	}
	if err := s.Teams.Seed(ctx, data.Teams); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if err := s.Users.Seed(ctx, data.Users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.Objectives.Seed(ctx, data.Objectives); err != nil {
		return fmt.Errorf("seed objectives: %w", err)
	}
	if err := s.Cfr.Seed(ctx, data.CfrSessions); err != nil {
		return fmt.Errorf("seed cfr sessions: %w", err)
	}
	return nil
}
