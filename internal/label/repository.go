package label

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/memorizer/internal/database"
)

// Repository stores assignments. Mutate is the only way to change them.
type Repository interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Assignment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Assignment, error)
	// Mutate loads the owner's forest under an exclusive lock, runs fn on it and
	// writes back what fn changed. Nothing is written when fn returns an error.
	Mutate(ctx context.Context, ownerID uuid.UUID, fn func(f *Forest) error) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db       *sqlx.DB
	attempts uint
}

// NewDBRepository creates a new DBRepository.
// attempts bounds how often a mutation is replayed after a deadlock.
func NewDBRepository(db *sqlx.DB, attempts uint) *DBRepository {
	return &DBRepository{db: db, attempts: attempts}
}

const assignmentColumns = "id, owner_id, entity_type, questionnaire_id, question_id, label_id, parent_label_id, label_number, created_at"

type assignmentRow struct {
	ID              uuid.UUID     `db:"id"`
	OwnerID         uuid.UUID     `db:"owner_id"`
	EntityType      string        `db:"entity_type"`
	QuestionnaireID uuid.NullUUID `db:"questionnaire_id"`
	QuestionID      uuid.NullUUID `db:"question_id"`
	LabelID         uuid.UUID     `db:"label_id"`
	ParentLabelID   uuid.NullUUID `db:"parent_label_id"`
	LabelNumber     int           `db:"label_number"`
	CreatedAt       time.Time     `db:"created_at"`
}

func newAssignmentRow(a Assignment) assignmentRow {
	row := assignmentRow{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		EntityType:  string(a.Entity.Type()),
		LabelID:     a.LabelID,
		LabelNumber: a.LabelNumber,
		CreatedAt:   a.CreatedAt,
	}
	switch a.Entity.Type() {
	case EntityQuestionnaire:
		row.QuestionnaireID = uuid.NullUUID{UUID: a.Entity.ID(), Valid: true}
	case EntityQuestion:
		row.QuestionID = uuid.NullUUID{UUID: a.Entity.ID(), Valid: true}
	}
	if a.ParentLabelID != nil {
		row.ParentLabelID = uuid.NullUUID{UUID: *a.ParentLabelID, Valid: true}
	}
	return row
}

func (row assignmentRow) toAssignment() (Assignment, error) {
	entityID := row.QuestionnaireID.UUID
	if EntityType(row.EntityType) == EntityQuestion {
		entityID = row.QuestionID.UUID
	}
	entity, err := NewEntityRef(EntityType(row.EntityType), entityID)
	if err != nil {
		return Assignment{}, fmt.Errorf("entity_labels(%s): %w", row.ID, err)
	}
	a := Assignment{
		ID:          row.ID,
		Entity:      entity,
		LabelID:     row.LabelID,
		LabelNumber: row.LabelNumber,
		OwnerID:     row.OwnerID,
		CreatedAt:   row.CreatedAt,
	}
	if row.ParentLabelID.Valid {
		parent := row.ParentLabelID.UUID
		a.ParentLabelID = &parent
	}
	return a, nil
}

func toAssignments(rows []assignmentRow) ([]Assignment, error) {
	result := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		a, err := row.toAssignment()
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// FindByOwner returns every assignment of ownerID.
func (r *DBRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Assignment, error) {
	var rows []assignmentRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT "+assignmentColumns+" FROM entity_labels WHERE owner_id = ? ORDER BY id",
		ownerID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(entity_labels) > %w", err)
	}
	return toAssignments(rows)
}

// FindByID returns an assignment by id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	var row assignmentRow
	err := r.db.GetContext(ctx, &row, "SELECT "+assignmentColumns+" FROM entity_labels WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(entity_labels) > %w", err)
	}
	a, err := row.toAssignment()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Mutate serializes writers of one owner on the owner's row in label_graph_locks.
// The transaction is replayed from the start when MySQL reports a deadlock.
func (r *DBRepository) Mutate(ctx context.Context, ownerID uuid.UUID, fn func(f *Forest) error) error {
	return database.RunInTxWithRetry(ctx, r.db, r.attempts, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT IGNORE INTO label_graph_locks (owner_id) VALUES (?)", ownerID); err != nil {
			return fmt.Errorf("tx.ExecContext(insert label_graph_lock) > %w", err)
		}
		var locked uuid.UUID
		if err := tx.GetContext(ctx, &locked, "SELECT owner_id FROM label_graph_locks WHERE owner_id = ? FOR UPDATE", ownerID); err != nil {
			return fmt.Errorf("tx.GetContext(lock label graph) > %w", err)
		}

		var rows []assignmentRow
		if err := tx.SelectContext(ctx, &rows,
			"SELECT "+assignmentColumns+" FROM entity_labels WHERE owner_id = ? ORDER BY id",
			ownerID); err != nil {
			return fmt.Errorf("tx.SelectContext(entity_labels) > %w", err)
		}
		assignments, err := toAssignments(rows)
		if err != nil {
			return err
		}

		forest := NewForest(assignments)
		if err := fn(forest); err != nil {
			return err
		}
		return writeChanges(ctx, tx, forest.Changes())
	})
}

func writeChanges(ctx context.Context, tx *sqlx.Tx, changes Changes) error {
	if len(changes.Deleted) > 0 {
		query, args, err := sqlx.In("DELETE FROM entity_labels WHERE id IN (?)", changes.Deleted)
		if err != nil {
			return fmt.Errorf("sqlx.In(delete entity_labels) > %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("tx.ExecContext(delete entity_labels) > %w", err)
		}
	}
	for _, a := range changes.Updated {
		row := newAssignmentRow(a)
		if _, err := tx.ExecContext(ctx,
			"UPDATE entity_labels SET parent_label_id = ?, label_number = ? WHERE id = ?",
			row.ParentLabelID, row.LabelNumber, row.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(update entity_labels) > %w", err)
		}
	}
	for _, a := range changes.Inserted {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO entity_labels (`+assignmentColumns+`)
			VALUES (:id, :owner_id, :entity_type, :questionnaire_id, :question_id, :label_id, :parent_label_id, :label_number, :created_at)`,
			newAssignmentRow(a)); err != nil {
			return fmt.Errorf("tx.NamedExecContext(insert entity_labels) > %w", err)
		}
	}
	return nil
}
