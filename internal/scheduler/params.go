package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/config"
	"github.com/at-ishikawa/memorizer/internal/eventlog"
)

// Params tunes the fold. Ratings at or above PassThreshold pass.
type Params struct {
	InitialInterval   time.Duration
	ReviewMinInterval time.Duration
	MaxInterval       time.Duration
	DefaultEase       float64
	EaseFloor         float64
	PassThreshold     int
	MaxRating         int
	MaxPenaltyPoints  int
	// PenaltyShrink is the fraction an interval loses when an event carries penalty points.
	PenaltyShrink    float64
	RelearnPasses    int
	GraduationPasses int
}

// DefaultParams returns the parameters used when nothing is configured.
func DefaultParams() Params {
	return Params{
		InitialInterval:   24 * time.Hour,
		ReviewMinInterval: 24 * time.Hour,
		MaxInterval:       3650 * 24 * time.Hour,
		DefaultEase:       2.5,
		EaseFloor:         1.3,
		PassThreshold:     3,
		MaxRating:         5,
		MaxPenaltyPoints:  10,
		PenaltyShrink:     0.25,
		RelearnPasses:     3,
		GraduationPasses:  1,
	}
}

// NewParams converts the validated scheduler configuration.
func NewParams(cfg config.SchedulerConfig) Params {
	return Params{
		InitialInterval:   cfg.InitialInterval,
		ReviewMinInterval: cfg.ReviewMinInterval,
		MaxInterval:       cfg.MaxInterval,
		DefaultEase:       cfg.DefaultEase,
		EaseFloor:         cfg.EaseFloor,
		PassThreshold:     cfg.PassThreshold,
		MaxRating:         cfg.MaxRating,
		MaxPenaltyPoints:  cfg.MaxPenaltyPoints,
		PenaltyShrink:     cfg.PenaltyShrink,
		RelearnPasses:     cfg.RelearnPasses,
		GraduationPasses:  cfg.GraduationPasses,
	}
}

// ValidateEvent rejects events the fold must never see.
// Out-of-range values are reported, not clamped.
func (p Params) ValidateEvent(e eventlog.ReviewEvent) error {
	switch {
	case e.ID == uuid.Nil:
		return apperrors.Validation("id", "event id is required")
	case e.UserID == uuid.Nil:
		return apperrors.Validation("userId", "user id is required")
	case e.QuestionID == uuid.Nil:
		return apperrors.Validation("questionId", "question id is required")
	case e.EventTime.IsZero():
		return apperrors.Validation("eventTime", "event time is required")
	case e.ResultRating < 0 || e.ResultRating > p.MaxRating:
		return apperrors.Validation("resultRating", "rating %d is outside [0, %d]", e.ResultRating, p.MaxRating)
	case e.PenaltyPoints < 0 || e.PenaltyPoints > p.MaxPenaltyPoints:
		return apperrors.Validation("penaltyPoints", "penalty points %d are outside [0, %d]", e.PenaltyPoints, p.MaxPenaltyPoints)
	}
	return nil
}

func (p Params) passes(rating int) bool {
	return rating >= p.PassThreshold
}

// easeDelta is the SM-2 adjustment stretched over the configured rating scale.
// On a 0-5 scale: 5 → +0.10, 4 → 0, 3 → -0.14, 2 → -0.32, 1 → -0.54, 0 → -0.80.
// Only a top rating raises ease; a passing rating below it keeps or lowers ease.
func (p Params) easeDelta(rating int) float64 {
	miss := float64(p.MaxRating - rating)
	return 0.1 - miss*(0.08+miss*0.02)
}

func (p Params) minInterval(phase Phase) time.Duration {
	if phase == PhaseReview {
		return p.ReviewMinInterval
	}
	return p.InitialInterval
}

// clamp bounds a scaled interval to [minInterval(phase), MaxInterval].
// The product is bounded in float space so that huge eases cannot overflow.
func (p Params) clamp(phase Phase, scaled float64) time.Duration {
	if scaled >= float64(p.MaxInterval) {
		return p.MaxInterval
	}
	interval := time.Duration(scaled)
	if lower := p.minInterval(phase); interval < lower {
		return lower
	}
	return interval
}
