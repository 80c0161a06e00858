package statistics

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/memorizer/internal/eventlog"
)

var (
	questionA = uuid.MustParse("20000000-0000-0000-0000-00000000000a")
	questionB = uuid.MustParse("20000000-0000-0000-0000-00000000000b")
)

func mustParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func event(question uuid.UUID, date string, isNew bool, rating, penalty int) eventlog.ReviewEvent {
	return eventlog.ReviewEvent{
		ID:            uuid.New(),
		QuestionID:    question,
		EventTime:     mustParseDate(date),
		QuestionIsNew: isNew,
		ResultRating:  rating,
		PenaltyPoints: penalty,
	}
}

func TestCalculate(t *testing.T) {
	events := []eventlog.ReviewEvent{
		event(questionA, "2025-01-15", true, 4, 0),
		event(questionA, "2025-01-20", false, 2, 3),
		event(questionB, "2025-01-21", true, 5, 0),
		event(questionA, "2025-02-03", false, 3, 1),
		event(questionB, "2024-12-31", true, 1, 0),
		{ID: uuid.New(), QuestionID: questionB},
	}

	tests := []struct {
		name              string
		year              int
		month             int
		expectedPeriods   []ReviewStatistics
		expectedAggregate AggregateStatistics
	}{
		{
			name: "no filter",
			expectedPeriods: []ReviewStatistics{
				{Period: "2025-02", Reviews: 1, Lapses: 0, PenaltyPoints: 1, UniqueQuestions: 1},
				{Period: "2025-01", Reviews: 3, FirstPresentations: 2, Lapses: 1, PenaltyPoints: 3, UniqueQuestions: 2},
				{Period: "2024-12", Reviews: 1, FirstPresentations: 1, Lapses: 1, UniqueQuestions: 1},
			},
			expectedAggregate: AggregateStatistics{
				Reviews:            5,
				FirstPresentations: 3,
				Lapses:             2,
				PenaltyPoints:      4,
				UniqueQuestions:    2,
			},
		},
		{
			name: "year filter",
			year: 2025,
			expectedPeriods: []ReviewStatistics{
				{Period: "2025-02", Reviews: 1, PenaltyPoints: 1, UniqueQuestions: 1},
				{Period: "2025-01", Reviews: 3, FirstPresentations: 2, Lapses: 1, PenaltyPoints: 3, UniqueQuestions: 2},
			},
			expectedAggregate: AggregateStatistics{
				Reviews:            4,
				FirstPresentations: 2,
				Lapses:             1,
				PenaltyPoints:      4,
				UniqueQuestions:    2,
			},
		},
		{
			name:  "year and month filter",
			year:  2025,
			month: 2,
			expectedPeriods: []ReviewStatistics{
				{Period: "2025-02", Reviews: 1, PenaltyPoints: 1, UniqueQuestions: 1},
			},
			expectedAggregate: AggregateStatistics{
				Reviews:         1,
				PenaltyPoints:   1,
				UniqueQuestions: 1,
			},
		},
		{
			name:            "no matching events",
			year:            2023,
			expectedPeriods: []ReviewStatistics{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(events, 3, tt.year, tt.month)
			assert.Equal(t, tt.expectedPeriods, got.Periods)
			assert.Equal(t, tt.expectedAggregate, got.Aggregate)
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Run("with periods", func(t *testing.T) {
		var buf bytes.Buffer
		result := Calculate([]eventlog.ReviewEvent{
			event(questionA, "2025-01-15", true, 4, 0),
			event(questionA, "2025-01-20", false, 2, 3),
		}, 3, 0, 0)

		require.NoError(t, RenderMarkdown(&buf, "Review statistics", result))
		assert.Equal(t, "# Review statistics\n\n"+
			"| Period | Reviews | First presentations | Lapses | Penalty points | Questions |\n"+
			"|---|---:|---:|---:|---:|---:|\n"+
			"| 2025-01 | 2 | 1 | 1 | 3 | 1 |\n"+
			"| **Total** | 2 | 1 | 1 | 3 | 1 |\n", buf.String())
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderMarkdown(&buf, "Review statistics", StatisticsResult{}))
		assert.Equal(t, "# Review statistics\n\nNo reviews recorded.\n", buf.String())
	})
}
