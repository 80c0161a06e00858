// Package statistics summarizes the review event log per month.
package statistics

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/eventlog"
)

// ReviewStatistics holds statistics for a time period
type ReviewStatistics struct {
	Period             string // "2025-01"
	Reviews            int    // Total review events
	FirstPresentations int    // Events that presented a question for the first time
	Lapses             int    // Events rated below the pass threshold
	PenaltyPoints      int
	UniqueQuestions    int
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	Reviews            int
	FirstPresentations int
	Lapses             int
	PenaltyPoints      int
	UniqueQuestions    int // Deduplicated across periods
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []ReviewStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	reviews            int
	firstPresentations int
	lapses             int
	penaltyPoints      int
	questions          map[uuid.UUID]struct{}
}

// Calculate computes per-month statistics from review events.
// It accepts optional year and month filters (0 means no filter).
// An event with a rating below passThreshold counts as a lapse.
func Calculate(events []eventlog.ReviewEvent, passThreshold, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalQuestions := make(map[uuid.UUID]struct{})

	for _, e := range events {
		if e.EventTime.IsZero() {
			continue
		}
		t := e.EventTime.UTC()
		if !matchesFilter(t.Year(), int(t.Month()), year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
		data := stats[period]
		if data == nil {
			data = &periodData{questions: make(map[uuid.UUID]struct{})}
			stats[period] = data
		}

		data.reviews++
		if e.QuestionIsNew {
			data.firstPresentations++
		}
		if e.ResultRating < passThreshold {
			data.lapses++
		}
		data.penaltyPoints += e.PenaltyPoints
		data.questions[e.QuestionID] = struct{}{}
		globalQuestions[e.QuestionID] = struct{}{}
	}

	return buildResult(stats, globalQuestions)
}

func matchesFilter(eventYear, eventMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if eventYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return eventMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalQuestions map[uuid.UUID]struct{}) StatisticsResult {
	periods := make([]ReviewStatistics, 0, len(stats))

	var aggregate AggregateStatistics
	for period, data := range stats {
		periods = append(periods, ReviewStatistics{
			Period:             period,
			Reviews:            data.reviews,
			FirstPresentations: data.firstPresentations,
			Lapses:             data.lapses,
			PenaltyPoints:      data.penaltyPoints,
			UniqueQuestions:    len(data.questions),
		})
		aggregate.Reviews += data.reviews
		aggregate.FirstPresentations += data.firstPresentations
		aggregate.Lapses += data.lapses
		aggregate.PenaltyPoints += data.penaltyPoints
	}
	aggregate.UniqueQuestions = len(globalQuestions)

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}
