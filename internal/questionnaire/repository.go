package questionnaire

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
	"github.com/at-ishikawa/memorizer/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/questionnaire/mock_repository.go -package=mock_questionnaire

// Repository defines operations for managing questionnaires, questions and labels.
// Finders return nil without an error when the record does not exist.
type Repository interface {
	FindQuestionnaire(ctx context.Context, id uuid.UUID) (*Questionnaire, error)
	FindQuestionnaires(ctx context.Context, ids []uuid.UUID) ([]Questionnaire, error)
	FindPublishedByCode(ctx context.Context, code int) (*Questionnaire, error)
	SearchQuestionnaires(ctx context.Context, params SearchParams) ([]Questionnaire, error)
	CreateQuestionnaire(ctx context.Context, q *Questionnaire) error
	UpdateQuestionnaire(ctx context.Context, q *Questionnaire) error
	DeleteQuestionnaire(ctx context.Context, id uuid.UUID, version int) error

	FindQuestion(ctx context.Context, id uuid.UUID) (*Question, error)
	FindQuestions(ctx context.Context, ids []uuid.UUID) ([]Question, error)
	FindQuestionsByQuestionnaires(ctx context.Context, questionnaireIDs []uuid.UUID) ([]Question, error)
	CreateQuestion(ctx context.Context, q *Question) error
	UpdateQuestion(ctx context.Context, q *Question) error

	FindLabel(ctx context.Context, id uuid.UUID) (*Label, error)
	FindLabelsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Label, error)
	CreateLabel(ctx context.Context, l *Label) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db: db,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// FindQuestionnaire returns a questionnaire by id, or nil if not found.
func (r *DBRepository) FindQuestionnaire(ctx context.Context, id uuid.UUID) (*Questionnaire, error) {
	var q Questionnaire
	err := r.db.GetContext(ctx, &q, "SELECT "+questionnaireColumns+" FROM questionnaires WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(questionnaire) > %w", err)
	}
	return &q, nil
}

// FindQuestionnaires returns the existing questionnaires among ids ordered by id.
func (r *DBRepository) FindQuestionnaires(ctx context.Context, ids []uuid.UUID) ([]Questionnaire, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT "+questionnaireColumns+" FROM questionnaires WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(questionnaires) > %w", err)
	}
	var result []Questionnaire
	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(questionnaires by id) > %w", err)
	}
	return result, nil
}

// FindPublishedByCode returns the published questionnaire with the code, or nil.
// Drafts and archived questionnaires sharing the code are never matched.
func (r *DBRepository) FindPublishedByCode(ctx context.Context, code int) (*Questionnaire, error) {
	var q Questionnaire
	err := r.db.GetContext(ctx, &q,
		"SELECT "+questionnaireColumns+" FROM questionnaires WHERE code = ? AND status = ?",
		code, StatusPublished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(published questionnaire by code) > %w", err)
	}
	return &q, nil
}

// SearchQuestionnaires returns questionnaires matching params ordered by name then id.
func (r *DBRepository) SearchQuestionnaires(ctx context.Context, params SearchParams) ([]Questionnaire, error) {
	var (
		conditions []string
		args       []any
	)
	switch params.Scope {
	case ScopeOwn:
		conditions = append(conditions, "owner_id = ?")
		args = append(args, params.ViewerID)
	case ScopePublished:
		conditions = append(conditions, "status = ?")
		args = append(args, StatusPublished)
	default:
		conditions = append(conditions, "(owner_id = ? OR status = ?)")
		args = append(args, params.ViewerID, StatusPublished)
	}
	if params.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *params.Status)
	}
	if text := strings.TrimSpace(params.Text); text != "" {
		pattern := "%" + escapeLike(text) + "%"
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		args = append(args, pattern, pattern)
	}

	query := "SELECT " + questionnaireColumns + " FROM questionnaires WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY name, id"
	var result []Questionnaire
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(questionnaires) > %w", err)
	}
	return result, nil
}

// CreateQuestionnaire inserts a questionnaire. A nil id is replaced by a new one.
func (r *DBRepository) CreateQuestionnaire(ctx context.Context, q *Questionnaire) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = StatusDraft
	}
	now := r.now()
	q.Version = 1
	q.CreatedAt = now
	q.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO questionnaires (id, code, name, description, status, owner_id, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Code, q.Name, q.Description, q.Status, q.OwnerID, q.Version, q.CreatedAt, q.UpdatedAt)
	if database.IsDuplicateEntry(err) {
		return apperrors.Conflict("questionnaire code %d is already published", q.Code)
	}
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert questionnaire) > %w", err)
	}
	return nil
}

// UpdateQuestionnaire writes q if its version is still current and bumps the version.
func (r *DBRepository) UpdateQuestionnaire(ctx context.Context, q *Questionnaire) error {
	now := r.now()
	result, err := r.db.ExecContext(ctx,
		`UPDATE questionnaires SET code = ?, name = ?, description = ?, status = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`,
		q.Code, q.Name, q.Description, q.Status, now, q.ID, q.Version)
	if database.IsDuplicateEntry(err) {
		return apperrors.Conflict("questionnaire code %d is already published", q.Code)
	}
	if err != nil {
		return fmt.Errorf("db.ExecContext(update questionnaire) > %w", err)
	}
	if err := expectOneRow(result, "questionnaire", q.ID, q.Version); err != nil {
		return err
	}
	q.Version++
	q.UpdatedAt = now
	return nil
}

// DeleteQuestionnaire removes a questionnaire together with its questions and label assignments.
func (r *DBRepository) DeleteQuestionnaire(ctx context.Context, id uuid.UUID, version int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM questionnaires WHERE id = ? AND version = ?", id, version)
	if err != nil {
		return fmt.Errorf("db.ExecContext(delete questionnaire) > %w", err)
	}
	return expectOneRow(result, "questionnaire", id, version)
}

// FindQuestion returns a question by id, or nil if not found.
func (r *DBRepository) FindQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	err := r.db.GetContext(ctx, &q, "SELECT "+questionColumns+" FROM questions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(question) > %w", err)
	}
	return &q, nil
}

// FindQuestions returns the existing questions among ids ordered by id.
func (r *DBRepository) FindQuestions(ctx context.Context, ids []uuid.UUID) ([]Question, error) {
	return r.selectQuestionsIn(ctx, "id", ids)
}

// FindQuestionsByQuestionnaires returns every question of the questionnaires ordered by id.
func (r *DBRepository) FindQuestionsByQuestionnaires(ctx context.Context, questionnaireIDs []uuid.UUID) ([]Question, error) {
	return r.selectQuestionsIn(ctx, "questionnaire_id", questionnaireIDs)
}

func (r *DBRepository) selectQuestionsIn(ctx context.Context, column string, ids []uuid.UUID) ([]Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT "+questionColumns+" FROM questions WHERE "+column+" IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(questions) > %w", err)
	}
	var result []Question
	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(questions by %s) > %w", column, err)
	}
	return result, nil
}

// CreateQuestion inserts a question. A nil id is replaced by a new one.
func (r *DBRepository) CreateQuestion(ctx context.Context, q *Question) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	now := r.now()
	q.Version = 1
	q.CreatedAt = now
	q.UpdatedAt = now

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (id, questionnaire_id, text, answer, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.QuestionnaireID, q.Text, q.Answer, q.Version, q.CreatedAt, q.UpdatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert question) > %w", err)
	}
	return nil
}

// UpdateQuestion writes q if its version is still current and bumps the version.
func (r *DBRepository) UpdateQuestion(ctx context.Context, q *Question) error {
	now := r.now()
	result, err := r.db.ExecContext(ctx,
		"UPDATE questions SET text = ?, answer = ?, version = version + 1, updated_at = ? WHERE id = ? AND version = ?",
		q.Text, q.Answer, now, q.ID, q.Version)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update question) > %w", err)
	}
	if err := expectOneRow(result, "question", q.ID, q.Version); err != nil {
		return err
	}
	q.Version++
	q.UpdatedAt = now
	return nil
}

// FindLabel returns a label by id, or nil if not found.
func (r *DBRepository) FindLabel(ctx context.Context, id uuid.UUID) (*Label, error) {
	var l Label
	err := r.db.GetContext(ctx, &l, "SELECT id, name, owner_id, created_at FROM labels WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(label) > %w", err)
	}
	return &l, nil
}

// FindLabelsByOwner returns the labels of an owner ordered by name then id.
func (r *DBRepository) FindLabelsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Label, error) {
	var labels []Label
	if err := r.db.SelectContext(ctx, &labels,
		"SELECT id, name, owner_id, created_at FROM labels WHERE owner_id = ? ORDER BY name, id", ownerID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(labels) > %w", err)
	}
	return labels, nil
}

// CreateLabel inserts a label. A nil id is replaced by a new one.
func (r *DBRepository) CreateLabel(ctx context.Context, l *Label) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.CreatedAt = r.now()
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO labels (id, name, owner_id, created_at) VALUES (?, ?, ?, ?)",
		l.ID, l.Name, l.OwnerID, l.CreatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(insert label) > %w", err)
	}
	return nil
}

const (
	questionnaireColumns = "id, code, name, description, status, owner_id, version, created_at, updated_at"
	questionColumns      = "id, questionnaire_id, text, answer, version, created_at, updated_at"
)

func expectOneRow(result sql.Result, entity string, id uuid.UUID, version int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return apperrors.Conflict("%s %s was modified or removed after version %d", entity, id, version)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
