// internal/domain/models/cfrsession.go
package models

import "time"

// Recognition is a shout-out to a team member recorded in a CFR session.
type Recognition struct {
	MemberID string `json:"memberId"`
	Comment  string `json:"comment"`
}

// CfrSession is a monthly Conversation/Feedback/Recognition record tied to
// one objective. At most one session exists per (ObjectiveID, Year, Month);
// saving again for the same month updates the existing session in place and
// bumps UpdatedAt.
type CfrSession struct {
	ID              string        `json:"id"`
	ObjectiveID     string        `json:"objectiveId"`
	AuthorID        string        `json:"authorId"`
	Year            int           `json:"year"`
	Quarter         int           `json:"quarter"`
	Month           int           `json:"month"` // 1-12
	WhatHappened    string        `json:"whatHappened"`
	Challenges      string        `json:"challenges"`
	NextPlans       string        `json:"nextPlans"`
	Recognitions    []Recognition `json:"recognitions"`
	ManagerFeedback string        `json:"managerFeedback,omitempty"` // admin-only field
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
