package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/eventlog/mock_repository.go -package=mock_eventlog

// Repository is the append-only review event store.
// Every finder returns events in arrival order.
type Repository interface {
	// Append inserts the event if its id is absent and fills in Sequence.
	// An existing id yields an apperrors.ErrDuplicateID error and leaves the log unchanged.
	Append(ctx context.Context, event *ReviewEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewEvent, error)
	FindByQuestion(ctx context.Context, userID, questionID uuid.UUID) ([]ReviewEvent, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]ReviewEvent, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

const eventColumns = "event_id, sequence, user_id, question_id, event_time, question_is_new, typed_answers, result_rating, penalty_points, message"

// Append inserts the event keyed by its caller-supplied id.
// EventTime is stored in UTC at microsecond precision so that a replay reads back what was folded.
func (r *DBRepository) Append(ctx context.Context, event *ReviewEvent) error {
	event.EventTime = event.EventTime.UTC().Truncate(time.Microsecond)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO review_events (event_id, user_id, question_id, event_time, question_is_new, typed_answers, result_rating, penalty_points, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.UserID, event.QuestionID, event.EventTime, event.QuestionIsNew,
		event.TypedAnswers, event.ResultRating, event.PenaltyPoints, event.Message)
	if database.IsDuplicateEntry(err) {
		return apperrors.DuplicateID("review event", event.ID)
	}
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review_event) > %w", err)
	}
	sequence, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	event.Sequence = sequence
	return nil
}

// FindByID returns an event by id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id uuid.UUID) (*ReviewEvent, error) {
	var event ReviewEvent
	err := r.db.GetContext(ctx, &event, "SELECT "+eventColumns+" FROM review_events WHERE event_id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(review_event) > %w", err)
	}
	return &event, nil
}

// FindByQuestion returns the events of one question+user pair.
func (r *DBRepository) FindByQuestion(ctx context.Context, userID, questionID uuid.UUID) ([]ReviewEvent, error) {
	var events []ReviewEvent
	if err := r.db.SelectContext(ctx, &events,
		"SELECT "+eventColumns+" FROM review_events WHERE user_id = ? AND question_id = ? ORDER BY sequence",
		userID, questionID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_events by question) > %w", err)
	}
	return events, nil
}

// FindByUser returns every event of a user.
func (r *DBRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]ReviewEvent, error) {
	var events []ReviewEvent
	if err := r.db.SelectContext(ctx, &events,
		"SELECT "+eventColumns+" FROM review_events WHERE user_id = ? ORDER BY sequence",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_events by user) > %w", err)
	}
	return events, nil
}

// GroupByQuestion splits a user's events per question, keeping arrival order within each group.
func GroupByQuestion(events []ReviewEvent) map[uuid.UUID][]ReviewEvent {
	groups := make(map[uuid.UUID][]ReviewEvent)
	for _, e := range events {
		groups[e.QuestionID] = append(groups[e.QuestionID], e)
	}
	return groups
}
