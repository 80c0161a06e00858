// Package eventlog provides the append-only log of review outcomes.
package eventlog

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEvent is an immutable review outcome of one question by one user.
// Sequence is the arrival order assigned by the store and breaks ties between equal event times.
type ReviewEvent struct {
	ID            uuid.UUID `db:"event_id" yaml:"id"`
	Sequence      int64     `db:"sequence" yaml:"-"`
	UserID        uuid.UUID `db:"user_id" yaml:"user_id"`
	QuestionID    uuid.UUID `db:"question_id" yaml:"question_id"`
	EventTime     time.Time `db:"event_time" yaml:"event_time"`
	QuestionIsNew bool      `db:"question_is_new" yaml:"question_is_new"`
	TypedAnswers  string    `db:"typed_answers" yaml:"typed_answers,omitempty"`
	ResultRating  int       `db:"result_rating" yaml:"result_rating"`
	PenaltyPoints int       `db:"penalty_points" yaml:"penalty_points"`
	Message       string    `db:"message" yaml:"message,omitempty"`
}

// SameSubject reports whether both events record a review of the same question by the same user.
func (e ReviewEvent) SameSubject(other ReviewEvent) bool {
	return e.UserID == other.UserID && e.QuestionID == other.QuestionID
}
