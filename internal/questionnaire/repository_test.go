package questionnaire

import (
	"context"
	"database/sql/driver"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/memorizer/internal/apperrors"
)

var (
	testNow     = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ownerID     = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	otherUserID = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
)

func newTestRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	repo.now = func() time.Time { return testNow }
	return repo, mock
}

func questionnaireRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "name", "description", "status", "owner_id", "version", "created_at", "updated_at"})
}

func TestDBRepository_FindPublishedByCode(t *testing.T) {
	publishedID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	query := regexp.QuoteMeta("SELECT " + questionnaireColumns + " FROM questionnaires WHERE code = ? AND status = ?")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Questionnaire
		wantErr   bool
	}{
		{
			name: "matches only the published questionnaire",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs(42, StatusPublished).
					WillReturnRows(questionnaireRows().
						AddRow(publishedID.String(), 42, "Capitals", "", "published", ownerID.String(), 3, testNow, testNow))
			},
			want: &Questionnaire{
				ID: publishedID, Code: 42, Name: "Capitals", Status: StatusPublished,
				OwnerID: ownerID, Version: 3, CreatedAt: testNow, UpdatedAt: testNow,
			},
		},
		{
			name: "draft sharing the code is not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs(42, StatusPublished).
					WillReturnRows(questionnaireRows())
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindPublishedByCode(context.Background(), 42)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_SearchQuestionnaires(t *testing.T) {
	published := StatusPublished

	tests := []struct {
		name      string
		params    SearchParams
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "visible scope",
			params:    SearchParams{ViewerID: ownerID},
			wantQuery: "WHERE (owner_id = ? OR status = ?) ORDER BY name, id",
			wantArgs:  []driver.Value{ownerID, StatusPublished},
		},
		{
			name:      "own scope with status",
			params:    SearchParams{ViewerID: ownerID, Scope: ScopeOwn, Status: &published},
			wantQuery: "WHERE owner_id = ? AND status = ? ORDER BY name, id",
			wantArgs:  []driver.Value{ownerID, StatusPublished},
		},
		{
			name:      "published scope with escaped text",
			params:    SearchParams{ViewerID: ownerID, Scope: ScopePublished, Text: " 100%_ "},
			wantQuery: "WHERE status = ? AND (name LIKE ? OR description LIKE ?) ORDER BY name, id",
			wantArgs:  []driver.Value{StatusPublished, `%100\%\_%`, `%100\%\_%`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT " + questionnaireColumns + " FROM questionnaires " + tt.wantQuery)).
				WithArgs(tt.wantArgs...).
				WillReturnRows(questionnaireRows().
					AddRow(uuid.New().String(), 1, "A", "", "draft", ownerID.String(), 1, testNow, testNow).
					AddRow(uuid.New().String(), 2, "B", "", "published", otherUserID.String(), 1, testNow, testNow))

			got, err := repo.SearchQuestionnaires(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Len(t, got, 2)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_CreateQuestionnaire(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO questionnaires")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  apperrors.Kind
	}{
		{
			name: "inserts a draft",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs(sqlmock.AnyArg(), 7, "Rivers", "", StatusDraft, ownerID, 1, testNow, testNow).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "published code taken",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnError(&mysql.MySQLError{Number: 1062})
			},
			wantKind: apperrors.KindConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			q := &Questionnaire{Code: 7, Name: "Rivers", OwnerID: ownerID}
			err := repo.CreateQuestionnaire(context.Background(), q)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, q.ID)
			assert.Equal(t, 1, q.Version)
			assert.Equal(t, StatusDraft, q.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_UpdateQuestionnaire(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	query := regexp.QuoteMeta("UPDATE questionnaires SET")

	tests := []struct {
		name        string
		affected    int64
		wantVersion int
		wantKind    apperrors.Kind
	}{
		{
			name:        "current version is updated",
			affected:    1,
			wantVersion: 3,
		},
		{
			name:        "stale version conflicts",
			affected:    0,
			wantVersion: 2,
			wantKind:    apperrors.KindConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			mock.ExpectExec(query).
				WithArgs(5, "Lakes", "", StatusPublished, testNow, id, 2).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			q := &Questionnaire{ID: id, Code: 5, Name: "Lakes", Status: StatusPublished, OwnerID: ownerID, Version: 2}
			err := repo.UpdateQuestionnaire(context.Background(), q)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantVersion, q.Version)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindQuestionsByQuestionnaires(t *testing.T) {
	questionnaireID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	questionID := uuid.MustParse("00000000-0000-0000-0000-000000000011")

	tests := []struct {
		name      string
		ids       []uuid.UUID
		setupMock func(mock sqlmock.Sqlmock)
		wantLen   int
	}{
		{
			name: "no ids skips the query",
		},
		{
			name: "expands the id list",
			ids:  []uuid.UUID{questionnaireID},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + questionColumns + " FROM questions WHERE questionnaire_id IN (?) ORDER BY id")).
					WithArgs(questionnaireID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "questionnaire_id", "text", "answer", "version", "created_at", "updated_at"}).
						AddRow(questionID.String(), questionnaireID.String(), "Q", "A", 1, testNow, testNow))
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			got, err := repo.FindQuestionsByQuestionnaires(context.Background(), tt.ids)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindLabel(t *testing.T) {
	labelID := uuid.MustParse("00000000-0000-0000-0000-0000000000c1")
	query := regexp.QuoteMeta("SELECT id, name, owner_id, created_at FROM labels WHERE id = ?")

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(query).WithArgs(labelID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at"}).
				AddRow(labelID.String(), "geography", ownerID.String(), testNow))

		got, err := repo.FindLabel(context.Background(), labelID)
		require.NoError(t, err)
		assert.Equal(t, &Label{ID: labelID, Name: "geography", OwnerID: ownerID, CreatedAt: testNow}, got)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		mock.ExpectQuery(query).WithArgs(labelID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "created_at"}))

		got, err := repo.FindLabel(context.Background(), labelID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
