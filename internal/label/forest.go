package label

import (
	"bytes"
	"sort"

	"github.com/google/uuid"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
)

// Forest is an in-memory copy of one owner's assignments.
// Mutations keep labels acyclic and sibling numbers contiguous from 0,
// and record what has to be written back.
type Forest struct {
	byID     map[uuid.UUID]*Assignment
	inserted map[uuid.UUID]bool
	updated  map[uuid.UUID]bool
	deleted  map[uuid.UUID]bool
}

// Changes lists the rows a mutation touched.
type Changes struct {
	Inserted []Assignment
	Updated  []Assignment
	Deleted  []uuid.UUID
}

// IsEmpty reports whether nothing has to be written.
func (c Changes) IsEmpty() bool {
	return len(c.Inserted) == 0 && len(c.Updated) == 0 && len(c.Deleted) == 0
}

// NewForest copies assignments into a forest.
func NewForest(assignments []Assignment) *Forest {
	f := &Forest{
		byID:     make(map[uuid.UUID]*Assignment, len(assignments)),
		inserted: make(map[uuid.UUID]bool),
		updated:  make(map[uuid.UUID]bool),
		deleted:  make(map[uuid.UUID]bool),
	}
	for _, a := range assignments {
		a := a
		a.ParentLabelID = copyID(a.ParentLabelID)
		f.byID[a.ID] = &a
	}
	return f
}

// Get returns the assignment with the id.
func (f *Forest) Get(id uuid.UUID) (Assignment, bool) {
	a, ok := f.byID[id]
	if !ok {
		return Assignment{}, false
	}
	return *a, true
}

// Assignments returns every assignment ordered by id.
func (f *Forest) Assignments() []Assignment {
	result := make([]Assignment, 0, len(f.byID))
	for _, a := range f.byID {
		result = append(result, *a)
	}
	sortByID(result)
	return result
}

// Siblings returns the group under parent for entityType ordered by LabelNumber.
func (f *Forest) Siblings(parent *uuid.UUID, entityType EntityType) []Assignment {
	group := f.group(keyOf(parent, entityType), uuid.Nil)
	result := make([]Assignment, len(group))
	for i, a := range group {
		result[i] = *a
	}
	return result
}

// Insert adds a at position among its siblings. Later siblings shift by one.
func (f *Forest) Insert(a Assignment, position int) (Assignment, error) {
	if err := f.checkEdge(a.Entity, a.LabelID, a.ParentLabelID, uuid.Nil); err != nil {
		return Assignment{}, err
	}
	a.ParentLabelID = copyID(a.ParentLabelID)
	a.LabelNumber = f.openSlot(a.siblingKey(), position, uuid.Nil)
	f.byID[a.ID] = &a
	f.inserted[a.ID] = true
	return a, nil
}

// Move re-attaches an assignment under newParent at newPosition.
// Either the whole move applies or the forest is left unchanged.
func (f *Forest) Move(id uuid.UUID, newParent *uuid.UUID, newPosition int) (Assignment, error) {
	a, ok := f.byID[id]
	if !ok {
		return Assignment{}, apperrors.NotFound("label assignment", id)
	}
	if err := f.checkEdge(a.Entity, a.LabelID, newParent, id); err != nil {
		return Assignment{}, err
	}

	f.closeGap(a)
	a.ParentLabelID = copyID(newParent)
	a.LabelNumber = f.openSlot(a.siblingKey(), newPosition, id)
	f.touch(a.ID)
	return *a, nil
}

// Remove detaches an assignment. Its children on the same entity move up to the
// removed assignment's parent, appended in their previous order. When no other
// assignment keeps the label under that parent, children on every entity move up.
// A child that would duplicate an existing assignment there is removed too.
func (f *Forest) Remove(id uuid.UUID) error {
	a, ok := f.byID[id]
	if !ok {
		return apperrors.NotFound("label assignment", id)
	}
	f.closeGap(a)
	f.delete(a.ID)

	labelID := a.LabelID
	stillPlaced := f.placed(labelID, a.ParentLabelID)
	for _, entityType := range []EntityType{EntityQuestionnaire, EntityQuestion} {
		for _, child := range f.group(keyOf(&labelID, entityType), uuid.Nil) {
			if stillPlaced && child.Entity != a.Entity {
				continue
			}
			f.closeGap(child)
			if f.findEdge(child.Entity, child.LabelID, a.ParentLabelID, child.ID) != nil {
				f.delete(child.ID)
				continue
			}
			child.ParentLabelID = copyID(a.ParentLabelID)
			child.LabelNumber = len(f.group(child.siblingKey(), child.ID))
			f.touch(child.ID)
		}
	}
	return nil
}

// placed reports whether some assignment nests labelID under parent, or at the root when parent is nil.
func (f *Forest) placed(labelID uuid.UUID, parent *uuid.UUID) bool {
	for _, a := range f.byID {
		if a.LabelID == labelID && sameParent(a.ParentLabelID, parent) {
			return true
		}
	}
	return false
}

// Subtree returns the entities tagged with root or nested under it, ordered by type then id.
// The walk uses an explicit queue so depth does not grow the call stack.
func (f *Forest) Subtree(root uuid.UUID) []EntityRef {
	children := make(map[uuid.UUID][]*Assignment)
	entities := make(map[EntityRef]bool)
	for _, a := range f.byID {
		if a.ParentLabelID != nil {
			children[*a.ParentLabelID] = append(children[*a.ParentLabelID], a)
		}
		if a.LabelID == root {
			entities[a.Entity] = true
		}
	}

	visited := map[uuid.UUID]bool{root: true}
	queue := []uuid.UUID{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			entities[child.Entity] = true
			if !visited[child.LabelID] {
				visited[child.LabelID] = true
				queue = append(queue, child.LabelID)
			}
		}
	}

	result := make([]EntityRef, 0, len(entities))
	for e := range entities {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}

// Changes returns the rows touched since the forest was built.
func (f *Forest) Changes() Changes {
	var c Changes
	for id := range f.inserted {
		c.Inserted = append(c.Inserted, *f.byID[id])
	}
	for id := range f.updated {
		c.Updated = append(c.Updated, *f.byID[id])
	}
	for id := range f.deleted {
		c.Deleted = append(c.Deleted, id)
	}
	sortByID(c.Inserted)
	sortByID(c.Updated)
	sort.Slice(c.Deleted, func(i, j int) bool {
		return bytes.Compare(c.Deleted[i][:], c.Deleted[j][:]) < 0
	})
	return c
}

// checkEdge rejects duplicates and cycles for attaching labelID to entity under parent.
// The assignment ignore is treated as absent.
func (f *Forest) checkEdge(entity EntityRef, labelID uuid.UUID, parent *uuid.UUID, ignore uuid.UUID) error {
	if f.findEdge(entity, labelID, parent, ignore) != nil {
		return apperrors.Conflict("label %s is already assigned to %s under the same parent", labelID, entity)
	}
	if parent != nil && f.isAncestorOrSelf(labelID, *parent, ignore) {
		return apperrors.Cycle(labelID, *parent)
	}
	return nil
}

func (f *Forest) findEdge(entity EntityRef, labelID uuid.UUID, parent *uuid.UUID, ignore uuid.UUID) *Assignment {
	for id, a := range f.byID {
		if id != ignore && a.sameEdge(entity, labelID, parent) {
			return a
		}
	}
	return nil
}

// isAncestorOrSelf walks the labels start nests under, across every branch,
// and reports whether target is reached.
func (f *Forest) isAncestorOrSelf(target, start uuid.UUID, ignore uuid.UUID) bool {
	parents := make(map[uuid.UUID][]uuid.UUID)
	for id, a := range f.byID {
		if id != ignore && a.ParentLabelID != nil {
			parents[a.LabelID] = append(parents[a.LabelID], *a.ParentLabelID)
		}
	}

	visited := map[uuid.UUID]bool{start: true}
	stack := []uuid.UUID{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == target {
			return true
		}
		for _, p := range parents[current] {
			if !visited[p] {
				visited[p] = true
				stack = append(stack, p)
			}
		}
	}
	return false
}

// group returns the siblings under key ordered by LabelNumber, without exclude.
func (f *Forest) group(key siblingKey, exclude uuid.UUID) []*Assignment {
	var result []*Assignment
	for id, a := range f.byID {
		if id != exclude && a.siblingKey() == key {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].LabelNumber != result[j].LabelNumber {
			return result[i].LabelNumber < result[j].LabelNumber
		}
		return bytes.Compare(result[i].ID[:], result[j].ID[:]) < 0
	})
	return result
}

// openSlot clamps position into the group and shifts the siblings at or after it.
func (f *Forest) openSlot(key siblingKey, position int, exclude uuid.UUID) int {
	siblings := f.group(key, exclude)
	position = max(0, min(position, len(siblings)))
	for _, s := range siblings[position:] {
		s.LabelNumber++
		f.touch(s.ID)
	}
	return position
}

// closeGap renumbers the siblings after a as if a were gone.
func (f *Forest) closeGap(a *Assignment) {
	for _, s := range f.group(a.siblingKey(), a.ID) {
		if s.LabelNumber > a.LabelNumber {
			s.LabelNumber--
			f.touch(s.ID)
		}
	}
}

func (f *Forest) touch(id uuid.UUID) {
	if !f.inserted[id] {
		f.updated[id] = true
	}
}

func (f *Forest) delete(id uuid.UUID) {
	delete(f.byID, id)
	delete(f.updated, id)
	if f.inserted[id] {
		delete(f.inserted, id)
		return
	}
	f.deleted[id] = true
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func sortByID(assignments []Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		return bytes.Compare(assignments[i].ID[:], assignments[j].ID[:]) < 0
	})
}
