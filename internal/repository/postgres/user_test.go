package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewouko/umoja-informatics/internal/model"
	"github.com/andrewouko/umoja-informatics/internal/query"
)

var userColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

func newMockRepository(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewUserRepository(db), mock
}

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)

	assert.NotNil(t, repo)
	assert.Nil(t, repo.db)
}

func TestUserRepository_Query(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	id1 := uuid.New()
	id2 := uuid.New()

	tests := []struct {
		name    string
		stmt    query.Statement
		setup   func(sqlmock.Sqlmock, query.Statement)
		want    []model.User
		wantErr error
	}{
		{
			name: "rows are scanned in order",
			stmt: query.Statement{SQL: "SELECT id, name, email, role, created_at, updated_at FROM users ORDER BY created_at, id"},
			setup: func(mock sqlmock.Sqlmock, stmt query.Statement) {
				mock.ExpectQuery(stmt.SQL).WillReturnRows(sqlmock.NewRows(userColumns).
					AddRow(id1.String(), "Ann", "ann@example.com", "author", now, now).
					AddRow(id2.String(), "Bob", "bob@example.com", "user", now, now))
			},
			want: []model.User{
				{ID: id1, Name: "Ann", Email: "ann@example.com", Role: model.RoleAuthor, CreatedAt: now, UpdatedAt: now},
				{ID: id2, Name: "Bob", Email: "bob@example.com", Role: model.RoleUser, CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			name: "no rows yields empty slice",
			stmt: query.Statement{SQL: "SELECT id, name, email, role, created_at, updated_at FROM users WHERE id = $1 ORDER BY created_at, id", Args: []any{id1}},
			setup: func(mock sqlmock.Sqlmock, stmt query.Statement) {
				mock.ExpectQuery(stmt.SQL).WithArgs(id1).WillReturnRows(sqlmock.NewRows(userColumns))
			},
			want: []model.User{},
		},
		{
			name: "unique violation is reported as duplicate",
			stmt: query.Statement{SQL: "INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4) RETURNING id, name, email, role, created_at, updated_at", Args: []any{id1, "Ann", "ann@example.com", "user"}},
			setup: func(mock sqlmock.Sqlmock, stmt query.Statement) {
				mock.ExpectQuery(stmt.SQL).WithArgs(id1, "Ann", "ann@example.com", "user").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: model.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock, tt.stmt)

			got, err := repo.Query(context.Background(), tt.stmt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserRepository_Query_Error(t *testing.T) {
	repo, mock := newMockRepository(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery("SELECT 1").WillReturnError(boom)

	_, err := repo.Query(context.Background(), query.Statement{SQL: "SELECT 1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, model.ErrDuplicate)
	assert.Contains(t, err.Error(), "failed to query users")
}

func TestUserRepository_Query_ScanError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows(userColumns).
		AddRow("not-a-uuid", "Ann", "ann@example.com", "user", time.Now(), time.Now()))

	_, err := repo.Query(context.Background(), query.Statement{SQL: "SELECT 1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan user")
}

func TestUserRepository_Exec(t *testing.T) {
	id := uuid.New()
	stmt := query.Delete(id)

	tests := []struct {
		name     string
		affected int64
	}{
		{name: "row deleted", affected: 1},
		{name: "nothing deleted", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			mock.ExpectExec(stmt.SQL).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, tt.affected))

			n, err := repo.Exec(context.Background(), stmt)
			require.NoError(t, err)
			assert.Equal(t, tt.affected, n)
		})
	}
}

func TestUserRepository_Exec_Error(t *testing.T) {
	repo, mock := newMockRepository(t)
	id := uuid.New()
	stmt := query.Delete(id)

	mock.ExpectExec(stmt.SQL).WithArgs(id).WillReturnError(errors.New("boom"))

	_, err := repo.Exec(context.Background(), stmt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute statement")
}
