package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"

	"github.com/andrewouko/umoja-informatics/internal/model"
	"github.com/andrewouko/umoja-informatics/internal/query"
)

// SQLSTATE raised when a unique index rejects a row.
const uniqueViolation = "23505"

// Querier is the subset of *sql.DB used by the repository.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// UserRepository executes user statements against the database.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Query runs stmt and scans every returned row into a User.
func (r *UserRepository) Query(ctx context.Context, stmt query.Statement) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, wrapError(err, "failed to query users")
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Role,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, wrapError(err, "failed to scan user")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError(err, "failed to read users")
	}

	return users, nil
}

// Exec runs stmt and returns the number of affected rows.
func (r *UserRepository) Exec(ctx context.Context, stmt query.Statement) (int64, error) {
	res, err := r.db.ExecContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return 0, wrapError(err, "failed to execute statement")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapError(err, "failed to read affected rows")
	}

	return n, nil
}

// wrapError records a stack trace and marks unique violations as model.ErrDuplicate.
func wrapError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pkgerrors.WithStack(fmt.Errorf("%s: %w: %w", msg, model.ErrDuplicate, err))
	}
	return pkgerrors.Wrap(err, msg)
}
