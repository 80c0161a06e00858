// Package scheduler derives learning states from review events and answers due queries.
//
// State is never stored. It is the left fold of a question's events in arrival order,
// so replaying the same events always yields the same state.
package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/eventlog"
)

// Phase is the coarse learning stage of a question.
type Phase string

const (
	PhaseNew      Phase = "new"
	PhaseLearning Phase = "learning"
	PhaseReview   Phase = "review"
	PhaseLapsed   Phase = "lapsed"
)

// LearningState is the derived schedule of one question for one user.
// A zero DueAt means the question is due immediately.
type LearningState struct {
	QuestionID        uuid.UUID     `json:"questionId" yaml:"question_id"`
	Phase             Phase         `json:"phase" yaml:"phase"`
	Interval          time.Duration `json:"interval" yaml:"interval"`
	Ease              float64       `json:"ease" yaml:"ease"`
	DueAt             time.Time     `json:"dueAt" yaml:"due_at"`
	ConsecutiveLapses int           `json:"consecutiveLapses" yaml:"consecutive_lapses"`
	PassStreak        int           `json:"passStreak" yaml:"pass_streak"`
	Reviews           int           `json:"reviews" yaml:"reviews"`
	LastEventID       uuid.UUID     `json:"lastEventId" yaml:"last_event_id"`
	LastReviewedAt    time.Time     `json:"lastReviewedAt" yaml:"last_reviewed_at"`
}

// IsDue reports whether the question should be presented at asOf.
func (s LearningState) IsDue(asOf time.Time) bool {
	return !s.DueAt.After(asOf)
}

// NewState is the state of a question without events.
func NewState(questionID uuid.UUID, p Params) LearningState {
	return LearningState{
		QuestionID: questionID,
		Phase:      PhaseNew,
		Ease:       p.DefaultEase,
	}
}

// ComputeState folds validated events, given in arrival order, into a learning state.
func ComputeState(questionID uuid.UUID, events []eventlog.ReviewEvent, p Params) LearningState {
	state := NewState(questionID, p)
	for _, e := range events {
		state = Apply(state, e, p)
	}
	return state
}

// Apply folds a single event into state.
func Apply(state LearningState, e eventlog.ReviewEvent, p Params) LearningState {
	passed := p.passes(e.ResultRating)

	if state.Phase == PhaseNew {
		state.Ease = p.DefaultEase
		state.Interval = p.InitialInterval
		if passed {
			state.Phase = PhaseLearning
			state.PassStreak = 1
		} else {
			state.Phase = PhaseLapsed
			state.ConsecutiveLapses = 1
		}
	} else if passed {
		state.Ease = max(p.EaseFloor, state.Ease+p.easeDelta(e.ResultRating))
		state.PassStreak++
		state.ConsecutiveLapses = 0
		switch {
		case state.Phase == PhaseLearning && state.PassStreak > p.GraduationPasses:
			state.Phase = PhaseReview
		case state.Phase == PhaseLapsed && state.PassStreak >= p.RelearnPasses:
			state.Phase = PhaseReview
		}
		state.Interval = p.clamp(state.Phase, float64(state.Interval)*state.Ease)
	} else {
		state.Ease = max(p.EaseFloor, min(state.Ease, state.Ease+p.easeDelta(e.ResultRating)))
		state.Phase = PhaseLapsed
		state.Interval = p.InitialInterval
		state.ConsecutiveLapses++
		state.PassStreak = 0
	}

	if e.PenaltyPoints > 0 {
		state.Interval = p.clamp(state.Phase, float64(state.Interval)*(1-p.PenaltyShrink))
	}

	state.Reviews++
	state.LastEventID = e.ID
	state.LastReviewedAt = e.EventTime
	state.DueAt = e.EventTime.Add(state.Interval)
	return state
}
