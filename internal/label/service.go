package label

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
)

// Authorizer decides whether a user may attach labels to an entity and use a label.
type Authorizer interface {
	CheckEntity(ctx context.Context, userID uuid.UUID, entity EntityRef) error
	CheckLabel(ctx context.Context, userID, labelID uuid.UUID) error
}

// Service runs label graph operations for one owner at a time.
type Service struct {
	repo   Repository
	authz  Authorizer
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new Service.
func NewService(repo Repository, authz Authorizer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		authz:  authz,
		logger: logger,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

// Assign attaches labelID to entity under parentLabelID at position among its siblings.
// position is clamped to the sibling count.
func (s *Service) Assign(ctx context.Context, userID uuid.UUID, entity EntityRef, labelID uuid.UUID, parentLabelID *uuid.UUID, position int) (*Assignment, error) {
	if entity.IsZero() {
		return nil, apperrors.Validation("entity", "entity reference is required")
	}
	if err := s.authz.CheckEntity(ctx, userID, entity); err != nil {
		return nil, err
	}
	if err := s.checkLabels(ctx, userID, &labelID, parentLabelID); err != nil {
		return nil, err
	}

	var created Assignment
	err := s.repo.Mutate(ctx, userID, func(f *Forest) error {
		var err error
		created, err = f.Insert(Assignment{
			ID:            uuid.New(),
			Entity:        entity,
			LabelID:       labelID,
			ParentLabelID: parentLabelID,
			OwnerID:       userID,
			CreatedAt:     s.now(),
		}, position)
		return err
	})
	if err != nil {
		return nil, apperrors.AsStorage("assign label", err)
	}
	s.logger.Debug("Assigned label",
		zap.Stringer("assignment_id", created.ID),
		zap.Stringer("entity", created.Entity),
		zap.Stringer("label_id", created.LabelID),
		zap.Int("label_number", created.LabelNumber))
	return &created, nil
}

// Move re-attaches an assignment under newParentLabelID at newPosition.
func (s *Service) Move(ctx context.Context, userID, assignmentID uuid.UUID, newParentLabelID *uuid.UUID, newPosition int) (*Assignment, error) {
	if err := s.checkOwner(ctx, userID, assignmentID); err != nil {
		return nil, err
	}
	if err := s.checkLabels(ctx, userID, newParentLabelID); err != nil {
		return nil, err
	}

	var moved Assignment
	err := s.repo.Mutate(ctx, userID, func(f *Forest) error {
		var err error
		moved, err = f.Move(assignmentID, newParentLabelID, newPosition)
		return err
	})
	if err != nil {
		return nil, apperrors.AsStorage("move label assignment", err)
	}
	s.logger.Debug("Moved label assignment",
		zap.Stringer("assignment_id", moved.ID),
		zap.Int("label_number", moved.LabelNumber))
	return &moved, nil
}

// Remove detaches an assignment and lifts its children to its former parent.
func (s *Service) Remove(ctx context.Context, userID, assignmentID uuid.UUID) error {
	if err := s.checkOwner(ctx, userID, assignmentID); err != nil {
		return err
	}
	if err := s.repo.Mutate(ctx, userID, func(f *Forest) error {
		return f.Remove(assignmentID)
	}); err != nil {
		return apperrors.AsStorage("remove label assignment", err)
	}
	s.logger.Debug("Removed label assignment", zap.Stringer("assignment_id", assignmentID))
	return nil
}

// SubtreeOf returns the entities tagged with labelID or nested under it.
func (s *Service) SubtreeOf(ctx context.Context, userID, labelID uuid.UUID) ([]EntityRef, error) {
	if err := s.authz.CheckLabel(ctx, userID, labelID); err != nil {
		return nil, err
	}
	forest, err := s.forest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return forest.Subtree(labelID), nil
}

// Siblings returns the assignments under parentLabelID for entityType in order.
func (s *Service) Siblings(ctx context.Context, userID uuid.UUID, parentLabelID *uuid.UUID, entityType EntityType) ([]Assignment, error) {
	if err := s.checkLabels(ctx, userID, parentLabelID); err != nil {
		return nil, err
	}
	forest, err := s.forest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return forest.Siblings(parentLabelID, entityType), nil
}

// Assignments returns every assignment of userID.
func (s *Service) Assignments(ctx context.Context, userID uuid.UUID) ([]Assignment, error) {
	forest, err := s.forest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return forest.Assignments(), nil
}

func (s *Service) forest(ctx context.Context, userID uuid.UUID) (*Forest, error) {
	assignments, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Storage("read label assignments", err)
	}
	return NewForest(assignments), nil
}

func (s *Service) checkOwner(ctx context.Context, userID, assignmentID uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, assignmentID)
	if err != nil {
		return apperrors.Storage("find label assignment", err)
	}
	if a == nil {
		return apperrors.NotFound("label assignment", assignmentID)
	}
	if a.OwnerID != userID {
		return apperrors.AccessDenied("label assignment", assignmentID)
	}
	return nil
}

func (s *Service) checkLabels(ctx context.Context, userID uuid.UUID, ids ...*uuid.UUID) error {
	for _, id := range ids {
		if id == nil {
			continue
		}
		if err := s.authz.CheckLabel(ctx, userID, *id); err != nil {
			return err
		}
	}
	return nil
}
