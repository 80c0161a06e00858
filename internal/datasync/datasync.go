// Package datasync provides import/export orchestration between YAML files and the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/eventlog"
	"github.com/at-ishikawa/memorizer/internal/label"
	"github.com/at-ishikawa/memorizer/internal/memorizer"
	"github.com/at-ishikawa/memorizer/internal/scheduler"
)

//go:generate mockgen -source=datasync.go -destination=../mocks/datasync/mock_datasync.go -package=mock_datasync

// EventRecorder records review events with the same checks as the server.
type EventRecorder interface {
	RecordReviewEvent(ctx context.Context, userID uuid.UUID, input memorizer.ReviewEventInput) (*scheduler.LearningState, error)
}

// AssignmentSource lists the label assignments of an owner.
type AssignmentSource interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]label.Assignment, error)
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	EventsNew      int
	EventsSkipped  int
	EventsWarnings int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer appends review events read from YAML.
type Importer struct {
	recorder EventRecorder
	events   eventlog.Repository
	writer   io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(recorder EventRecorder, events eventlog.Repository, writer io.Writer) *Importer {
	return &Importer{
		recorder: recorder,
		events:   events,
		writer:   writer,
	}
}

// ImportEvents appends events for userID in the given order.
// Events whose id is already recorded are skipped. Events of another user are skipped with a warning.
func (imp *Importer) ImportEvents(ctx context.Context, userID uuid.UUID, events []eventlog.ReviewEvent, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	for _, e := range events {
		if e.UserID != uuid.Nil && e.UserID != userID {
			fmt.Fprintf(imp.writer, "  [WARN]  event %s belongs to user %s\n", e.ID, e.UserID)
			result.EventsWarnings++
			continue
		}

		existing, err := imp.events.FindByID(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("FindByID(%s) > %w", e.ID, err)
		}
		if existing != nil {
			if existing.UserID != userID || existing.QuestionID != e.QuestionID {
				fmt.Fprintf(imp.writer, "  [WARN]  event %s is recorded for another question\n", e.ID)
				result.EventsWarnings++
				continue
			}
			result.EventsSkipped++
			continue
		}

		if !opts.DryRun {
			if _, err := imp.recorder.RecordReviewEvent(ctx, userID, memorizer.ReviewEventInput{
				ID:            e.ID,
				QuestionID:    e.QuestionID,
				EventTime:     e.EventTime,
				QuestionIsNew: e.QuestionIsNew,
				TypedAnswers:  e.TypedAnswers,
				ResultRating:  e.ResultRating,
				PenaltyPoints: e.PenaltyPoints,
				Message:       e.Message,
			}); err != nil {
				return nil, fmt.Errorf("RecordReviewEvent(%s) > %w", e.ID, err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  event %s at %s\n", e.ID, e.EventTime.Format(time.RFC3339))
		result.EventsNew++
	}

	return &result, nil
}

// AssignmentRecord is the YAML form of a label assignment.
type AssignmentRecord struct {
	ID            uuid.UUID  `yaml:"id"`
	EntityType    string     `yaml:"entity_type"`
	EntityID      uuid.UUID  `yaml:"entity_id"`
	LabelID       uuid.UUID  `yaml:"label_id"`
	ParentLabelID *uuid.UUID `yaml:"parent_label_id,omitempty"`
	LabelNumber   int        `yaml:"label_number"`
	CreatedAt     time.Time  `yaml:"created_at"`
}

// ExportData holds all exported data of one user.
type ExportData struct {
	ReviewEvents     []eventlog.ReviewEvent
	LabelAssignments []AssignmentRecord
}

// Exporter reads the database and returns records ready to be written as YAML.
type Exporter struct {
	events eventlog.Repository
	labels AssignmentSource
}

// NewExporter creates a new Exporter.
func NewExporter(events eventlog.Repository, labels AssignmentSource) *Exporter {
	return &Exporter{
		events: events,
		labels: labels,
	}
}

// Export reads the review events and label assignments of userID.
func (e *Exporter) Export(ctx context.Context, userID uuid.UUID) (*ExportData, error) {
	events, err := e.events.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("events.FindByUser() > %w", err)
	}

	assignments, err := e.labels.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("labels.FindByOwner() > %w", err)
	}
	records := make([]AssignmentRecord, len(assignments))
	for i, a := range assignments {
		records[i] = AssignmentRecord{
			ID:            a.ID,
			EntityType:    string(a.Entity.Type()),
			EntityID:      a.Entity.ID(),
			LabelID:       a.LabelID,
			ParentLabelID: a.ParentLabelID,
			LabelNumber:   a.LabelNumber,
			CreatedAt:     a.CreatedAt,
		}
	}

	return &ExportData{
		ReviewEvents:     events,
		LabelAssignments: records,
	}, nil
}
