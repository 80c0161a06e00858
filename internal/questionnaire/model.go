// Package questionnaire provides questionnaire, question and label records and their repository.
package questionnaire

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the availability of a questionnaire.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ParseStatus converts a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown questionnaire status %q", s)
}

// Scope selects which questionnaires a search considers.
type Scope string

const (
	// ScopeVisible is every questionnaire the viewer owns plus every published one.
	ScopeVisible   Scope = "visible"
	ScopeOwn       Scope = "own"
	ScopePublished Scope = "published"
)

// Questionnaire is a named collection of questions.
type Questionnaire struct {
	ID          uuid.UUID `db:"id" yaml:"id"`
	Code        int       `db:"code" yaml:"code"`
	Name        string    `db:"name" yaml:"name"`
	Description string    `db:"description" yaml:"description"`
	Status      Status    `db:"status" yaml:"status"`
	OwnerID     uuid.UUID `db:"owner_id" yaml:"owner_id"`
	Version     int       `db:"version" yaml:"version"`
	CreatedAt   time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" yaml:"updated_at"`
}

// IsPublished reports whether the questionnaire is readable by everyone.
func (q Questionnaire) IsPublished() bool {
	return q.Status == StatusPublished
}

// Question is a quizzable item of exactly one questionnaire.
type Question struct {
	ID              uuid.UUID `db:"id" yaml:"id"`
	QuestionnaireID uuid.UUID `db:"questionnaire_id" yaml:"questionnaire_id"`
	Text            string    `db:"text" yaml:"text"`
	Answer          string    `db:"answer" yaml:"answer"`
	Version         int       `db:"version" yaml:"version"`
	CreatedAt       time.Time `db:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" yaml:"updated_at"`
}

// Label is a reusable taxonomy node owned by one user.
type Label struct {
	ID        uuid.UUID `db:"id" yaml:"id"`
	Name      string    `db:"name" yaml:"name"`
	OwnerID   uuid.UUID `db:"owner_id" yaml:"owner_id"`
	CreatedAt time.Time `db:"created_at" yaml:"created_at"`
}

// SearchParams narrows SearchQuestionnaires.
type SearchParams struct {
	ViewerID uuid.UUID
	Scope    Scope
	Status   *Status
	Text     string
}
