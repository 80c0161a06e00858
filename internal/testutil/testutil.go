// Package testutil provides shared test helpers for config files and review fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/memorizer/internal/eventlog"
)

// SetupTestConfig writes a config file that points the statistics output into tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	outputDir := filepath.Join(tmpDir, "statistics")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	configContent := fmt.Sprintf(`server:
  port: 18080
database:
  host: 127.0.0.1
  port: 3306
  database: memorizer_test
  username: memorizer
statistics:
  output_directory: %s
`, outputDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// EventOption configures optional fields when creating a review event fixture.
type EventOption func(*eventlog.ReviewEvent)

func WithRating(rating int) EventOption {
	return func(e *eventlog.ReviewEvent) {
		e.ResultRating = rating
	}
}

func WithPenalty(points int) EventOption {
	return func(e *eventlog.ReviewEvent) {
		e.PenaltyPoints = points
	}
}

// AsNew marks the event as the first presentation of the question.
func AsNew() EventOption {
	return func(e *eventlog.ReviewEvent) {
		e.QuestionIsNew = true
	}
}

// NewReviewEvent builds a passing review event with a random id.
func NewReviewEvent(userID, questionID uuid.UUID, eventTime time.Time, opts ...EventOption) eventlog.ReviewEvent {
	e := eventlog.ReviewEvent{
		ID:           uuid.New(),
		UserID:       userID,
		QuestionID:   questionID,
		EventTime:    eventTime,
		TypedAnswers: "answer",
		ResultRating: 4,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
