package label

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
)

var (
	ownerID        = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	questionnaireA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	questionnaireB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	questionA      = uuid.MustParse("00000000-0000-0000-0000-000000000011")
	labelA         = uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	labelB         = uuid.MustParse("00000000-0000-0000-0000-0000000000c2")
	labelC         = uuid.MustParse("00000000-0000-0000-0000-0000000000c3")
	labelD         = uuid.MustParse("00000000-0000-0000-0000-0000000000c4")
	labelR         = uuid.MustParse("00000000-0000-0000-0000-0000000000cf")
)

func assignmentID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func edge(n int, entity EntityRef, labelID uuid.UUID, parent *uuid.UUID, number int) Assignment {
	return Assignment{ID: assignmentID(n), Entity: entity, LabelID: labelID, ParentLabelID: parent, LabelNumber: number, OwnerID: ownerID}
}

func labelsOf(assignments []Assignment) []uuid.UUID {
	result := make([]uuid.UUID, len(assignments))
	for i, a := range assignments {
		result[i] = a.LabelID
	}
	return result
}

// assertForestInvariants checks that sibling numbers are 0..n-1 in every group
// and that the label nesting relation has no cycle.
func assertForestInvariants(t *testing.T, assignments []Assignment) {
	t.Helper()

	groups := make(map[siblingKey][]int)
	parents := make(map[uuid.UUID][]uuid.UUID)
	for _, a := range assignments {
		groups[a.siblingKey()] = append(groups[a.siblingKey()], a.LabelNumber)
		if a.ParentLabelID != nil {
			parents[a.LabelID] = append(parents[a.LabelID], *a.ParentLabelID)
		}
	}
	for key, numbers := range groups {
		seen := make(map[int]bool, len(numbers))
		for _, n := range numbers {
			require.False(t, seen[n], "duplicate label number %d in %+v", n, key)
			require.True(t, n >= 0 && n < len(numbers), "label number %d out of range in %+v", n, key)
			seen[n] = true
		}
	}

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[uuid.UUID]int)
	type frame struct {
		label uuid.UUID
		next  int
	}
	for start := range parents {
		if state[start] != unvisited {
			continue
		}
		stack := []frame{{label: start}}
		state[start] = inProgress
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(parents[top.label]) {
				state[top.label] = done
				stack = stack[:len(stack)-1]
				continue
			}
			p := parents[top.label][top.next]
			top.next++
			switch state[p] {
			case inProgress:
				require.Failf(t, "cycle in label nesting", "label %s reaches itself", p)
			case unvisited:
				state[p] = inProgress
				stack = append(stack, frame{label: p})
			}
		}
	}
}

func TestForest_Insert(t *testing.T) {
	t.Run("insert at the front displaces earlier siblings", func(t *testing.T) {
		f := NewForest([]Assignment{edge(1, QuestionnaireRef(questionnaireA), labelR, nil, 0)})

		_, err := f.Insert(edge(2, QuestionnaireRef(questionnaireA), labelA, &labelR, 0), 0)
		require.NoError(t, err)
		_, err = f.Insert(edge(3, QuestionnaireRef(questionnaireB), labelB, &labelR, 0), 0)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{labelB, labelA}, labelsOf(f.Siblings(&labelR, EntityQuestionnaire)))
		assert.Equal(t,
			[]EntityRef{QuestionnaireRef(questionnaireA), QuestionnaireRef(questionnaireB)},
			f.Subtree(labelR))
		assertForestInvariants(t, f.Assignments())
	})

	t.Run("position is clamped to the sibling count", func(t *testing.T) {
		f := NewForest(nil)
		_, err := f.Insert(edge(1, QuestionnaireRef(questionnaireA), labelA, nil, 0), -3)
		require.NoError(t, err)
		got, err := f.Insert(edge(2, QuestionnaireRef(questionnaireA), labelB, nil, 0), 99)
		require.NoError(t, err)
		assert.Equal(t, 1, got.LabelNumber)

		got, err = f.Insert(edge(3, QuestionnaireRef(questionnaireA), labelC, nil, 0), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.LabelNumber)
		assert.Equal(t, []uuid.UUID{labelA, labelC, labelB}, labelsOf(f.Siblings(nil, EntityQuestionnaire)))
	})

	t.Run("entity types keep separate sibling groups", func(t *testing.T) {
		f := NewForest([]Assignment{edge(1, QuestionnaireRef(questionnaireA), labelA, &labelR, 0)})
		got, err := f.Insert(edge(2, QuestionRef(questionA), labelB, &labelR, 0), 5)
		require.NoError(t, err)
		assert.Equal(t, 0, got.LabelNumber)
	})

	tests := []struct {
		name     string
		existing []Assignment
		insert   Assignment
		wantKind apperrors.Kind
	}{
		{
			name:     "same label on the same entity and parent",
			existing: []Assignment{edge(1, QuestionRef(questionA), labelA, &labelR, 0)},
			insert:   edge(2, QuestionRef(questionA), labelA, &labelR, 0),
			wantKind: apperrors.KindConflict,
		},
		{
			name:     "label nested under itself",
			insert:   edge(1, QuestionRef(questionA), labelA, &labelA, 0),
			wantKind: apperrors.KindCycle,
		},
		{
			name: "label nested under its own descendant on another entity",
			existing: []Assignment{
				edge(1, QuestionnaireRef(questionnaireA), labelA, nil, 0),
				edge(2, QuestionnaireRef(questionnaireA), labelB, &labelA, 0),
				edge(3, QuestionnaireRef(questionnaireA), labelC, &labelB, 0),
			},
			insert:   edge(4, QuestionnaireRef(questionnaireB), labelA, &labelC, 0),
			wantKind: apperrors.KindCycle,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := NewForest(tt.existing)
			before := f.Assignments()

			_, err := f.Insert(tt.insert, 0)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			assert.Equal(t, before, f.Assignments())
			assert.True(t, f.Changes().IsEmpty())
		})
	}
}

func TestForest_Move(t *testing.T) {
	entity := QuestionnaireRef(questionnaireA)
	existing := func() []Assignment {
		return []Assignment{
			edge(1, entity, labelR, nil, 0),
			edge(2, entity, labelA, &labelR, 0),
			edge(3, entity, labelB, &labelR, 1),
			edge(4, entity, labelC, &labelR, 2),
			edge(5, entity, labelD, &labelA, 0),
		}
	}

	t.Run("reorders within the same parent", func(t *testing.T) {
		f := NewForest(existing())
		moved, err := f.Move(assignmentID(4), &labelR, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, moved.LabelNumber)
		assert.Equal(t, []uuid.UUID{labelC, labelA, labelB}, labelsOf(f.Siblings(&labelR, EntityQuestionnaire)))
		assertForestInvariants(t, f.Assignments())

		changes := f.Changes()
		assert.Empty(t, changes.Inserted)
		assert.Empty(t, changes.Deleted)
		assert.Len(t, changes.Updated, 3)
	})

	t.Run("moving to another parent closes the gap", func(t *testing.T) {
		f := NewForest(existing())
		moved, err := f.Move(assignmentID(3), &labelA, 0)
		require.NoError(t, err)
		assert.Equal(t, &labelA, moved.ParentLabelID)
		assert.Equal(t, []uuid.UUID{labelA, labelC}, labelsOf(f.Siblings(&labelR, EntityQuestionnaire)))
		assert.Equal(t, []uuid.UUID{labelB, labelD}, labelsOf(f.Siblings(&labelA, EntityQuestionnaire)))
		assertForestInvariants(t, f.Assignments())
	})

	t.Run("moving to the root", func(t *testing.T) {
		f := NewForest(existing())
		_, err := f.Move(assignmentID(5), nil, 99)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{labelR, labelD}, labelsOf(f.Siblings(nil, EntityQuestionnaire)))
		assertForestInvariants(t, f.Assignments())
	})

	tests := []struct {
		name      string
		extra     []Assignment
		id        uuid.UUID
		newParent *uuid.UUID
		wantKind  apperrors.Kind
	}{
		{
			name:      "under its own descendant",
			id:        assignmentID(2),
			newParent: &labelD,
			wantKind:  apperrors.KindCycle,
		},
		{
			name:      "onto an existing identical edge",
			extra:     []Assignment{edge(6, entity, labelD, &labelR, 3)},
			id:        assignmentID(6),
			newParent: &labelA,
			wantKind:  apperrors.KindConflict,
		},
		{
			name:      "unknown assignment",
			id:        assignmentID(99),
			newParent: nil,
			wantKind:  apperrors.KindNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := NewForest(append(existing(), tt.extra...))
			before := f.Assignments()

			_, err := f.Move(tt.id, tt.newParent, 0)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			assert.Equal(t, before, f.Assignments(), "a rejected move leaves the forest unchanged")
			assert.True(t, f.Changes().IsEmpty())
		})
	}
}

func TestForest_Remove(t *testing.T) {
	e1 := QuestionnaireRef(questionnaireA)
	e2 := QuestionnaireRef(questionnaireB)
	labelX := uuid.MustParse("00000000-0000-0000-0000-0000000000d1")
	labelY := uuid.MustParse("00000000-0000-0000-0000-0000000000d2")

	f := NewForest([]Assignment{
		edge(1, e1, labelR, nil, 0),
		edge(2, e1, labelX, &labelR, 0),
		edge(3, e1, labelY, &labelR, 1),
		edge(4, e1, labelD, &labelR, 2),
		edge(5, e1, labelC, &labelX, 0),
		edge(6, e1, labelD, &labelX, 1),
		edge(7, e2, labelC, &labelX, 2),
	})

	require.NoError(t, f.Remove(assignmentID(2)))

	rChildren := f.Siblings(&labelR, EntityQuestionnaire)
	assert.Equal(t, []uuid.UUID{labelY, labelD, labelC, labelC}, labelsOf(rChildren),
		"children move up to the former parent and are appended")
	assert.Equal(t, assignmentID(5), rChildren[2].ID)
	assert.Equal(t, assignmentID(7), rChildren[3].ID, "children on other entities move up once nothing keeps the label under the parent")
	assert.Empty(t, f.Siblings(&labelX, EntityQuestionnaire))
	assert.Contains(t, f.Subtree(labelR), e2)

	_, ok := f.Get(assignmentID(6))
	assert.False(t, ok, "a child that would duplicate an edge under the new parent is dropped")
	assertForestInvariants(t, f.Assignments())

	changes := f.Changes()
	assert.Equal(t, []uuid.UUID{assignmentID(2), assignmentID(6)}, changes.Deleted)
	assert.Empty(t, changes.Inserted)

	t.Run("children on another entity are not orphaned", func(t *testing.T) {
		f := NewForest([]Assignment{
			edge(1, e1, labelX, &labelR, 0),
			edge(2, e2, labelC, &labelX, 0),
		})
		require.Equal(t, []EntityRef{e1, e2}, f.Subtree(labelR))

		require.NoError(t, f.Remove(assignmentID(1)))
		got, ok := f.Get(assignmentID(2))
		require.True(t, ok)
		assert.Equal(t, &labelR, got.ParentLabelID)
		assert.Equal(t, 0, got.LabelNumber)
		assert.Equal(t, []EntityRef{e2}, f.Subtree(labelR))
		assertForestInvariants(t, f.Assignments())
	})

	t.Run("children on other entities stay while the label is still under the parent", func(t *testing.T) {
		question := QuestionRef(questionA)
		f := NewForest([]Assignment{
			edge(1, e1, labelX, &labelR, 0),
			edge(2, e2, labelX, &labelR, 1),
			edge(3, question, labelC, &labelX, 0),
		})

		require.NoError(t, f.Remove(assignmentID(1)))
		got, ok := f.Get(assignmentID(3))
		require.True(t, ok)
		assert.Equal(t, &labelX, got.ParentLabelID)
		assert.Contains(t, f.Subtree(labelR), question)
		assertForestInvariants(t, f.Assignments())
	})

	t.Run("unknown assignment", func(t *testing.T) {
		err := NewForest(nil).Remove(assignmentID(1))
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("removing an inserted assignment records nothing", func(t *testing.T) {
		f := NewForest(nil)
		a, err := f.Insert(edge(1, e1, labelA, nil, 0), 0)
		require.NoError(t, err)
		require.NoError(t, f.Remove(a.ID))
		assert.True(t, f.Changes().IsEmpty())
	})

	t.Run("root children stay at the root", func(t *testing.T) {
		f := NewForest([]Assignment{
			edge(1, e1, labelA, nil, 0),
			edge(2, e1, labelB, &labelA, 0),
		})
		require.NoError(t, f.Remove(assignmentID(1)))
		got, ok := f.Get(assignmentID(2))
		require.True(t, ok)
		assert.Nil(t, got.ParentLabelID)
		assert.Equal(t, 0, got.LabelNumber)
	})
}

func TestForest_Subtree(t *testing.T) {
	t.Run("follows every branch a label appears in", func(t *testing.T) {
		f := NewForest([]Assignment{
			edge(1, QuestionnaireRef(questionnaireA), labelR, nil, 0),
			edge(2, QuestionRef(questionA), labelA, &labelR, 0),
			edge(3, QuestionnaireRef(questionnaireB), labelB, &labelA, 0),
			edge(4, QuestionnaireRef(questionnaireB), labelC, nil, 1),
		})
		assert.Equal(t,
			[]EntityRef{QuestionRef(questionA), QuestionnaireRef(questionnaireA), QuestionnaireRef(questionnaireB)},
			f.Subtree(labelR))
		assert.Equal(t, []EntityRef{QuestionnaireRef(questionnaireB)}, f.Subtree(labelC))
		assert.Empty(t, f.Subtree(labelD))
	})

	t.Run("deep chains do not recurse", func(t *testing.T) {
		const depth = 20000
		assignments := make([]Assignment, depth)
		labels := make([]uuid.UUID, depth)
		for i := range labels {
			labels[i] = uuid.New()
		}
		for i := 0; i < depth; i++ {
			var parent *uuid.UUID
			if i > 0 {
				parent = ptr(labels[i-1])
			}
			assignments[i] = Assignment{ID: uuid.New(), Entity: QuestionRef(uuid.New()), LabelID: labels[i], ParentLabelID: parent, OwnerID: ownerID}
		}
		f := NewForest(assignments)
		assert.Len(t, f.Subtree(labels[0]), depth)

		_, err := f.Insert(Assignment{ID: uuid.New(), Entity: QuestionRef(questionA), LabelID: labels[0], ParentLabelID: ptr(labels[depth-1])}, 0)
		assert.Equal(t, apperrors.KindCycle, apperrors.KindOf(err))
	})
}

func TestForest_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	labels := []uuid.UUID{labelA, labelB, labelC, labelD, labelR}
	entities := []EntityRef{QuestionnaireRef(questionnaireA), QuestionnaireRef(questionnaireB), QuestionRef(questionA)}
	randomParent := func() *uuid.UUID {
		if rng.Intn(4) == 0 {
			return nil
		}
		return ptr(labels[rng.Intn(len(labels))])
	}

	for run := 0; run < 50; run++ {
		f := NewForest(nil)
		for step := 0; step < 60; step++ {
			before := f.Assignments()
			var err error
			switch op := rng.Intn(4); {
			case op <= 1 || len(before) == 0:
				_, err = f.Insert(Assignment{
					ID:            uuid.New(),
					Entity:        entities[rng.Intn(len(entities))],
					LabelID:       labels[rng.Intn(len(labels))],
					ParentLabelID: randomParent(),
					OwnerID:       ownerID,
				}, rng.Intn(6)-1)
			case op == 2:
				_, err = f.Move(before[rng.Intn(len(before))].ID, randomParent(), rng.Intn(6)-1)
			default:
				err = f.Remove(before[rng.Intn(len(before))].ID)
			}

			if err != nil {
				kind := apperrors.KindOf(err)
				require.Contains(t, []apperrors.Kind{apperrors.KindCycle, apperrors.KindConflict}, kind)
				require.Equal(t, before, f.Assignments(), "rejected operations leave the forest unchanged")
			}
			assertForestInvariants(t, f.Assignments())
		}
	}
}
