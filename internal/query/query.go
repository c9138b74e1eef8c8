// Package query builds the parameterized SQL statements issued against the
// users table. Builders are pure: they never touch the database.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/andrewouko/umoja-informatics/internal/model"
)

var (
	// ErrInvalidArgument is returned when both an id and a filter are supplied.
	ErrInvalidArgument = errors.New("query: an id and a filter cannot be combined")
	// ErrNoAssignments is returned when an update has nothing to set.
	ErrNoAssignments = errors.New("query: no fields to update")
)

const (
	table   = "users"
	columns = "id, name, email, role, created_at, updated_at"
)

// Statement is SQL text with values for its positional placeholders.
type Statement struct {
	SQL  string
	Args []any
}

// Assignment is a single column = value pair of an UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// SelectParams selects users by id or by filter. Both nil selects all users.
type SelectParams struct {
	ID     *uuid.UUID
	Filter *model.UserFilter
}

// Select builds a read query.
func Select(params SelectParams) (Statement, error) {
	if params.ID != nil && params.Filter != nil {
		return Statement{}, ErrInvalidArgument
	}

	var conditions []Assignment
	switch {
	case params.ID != nil:
		conditions = []Assignment{{Column: "id", Value: *params.ID}}
	case params.Filter != nil:
		conditions = filterConditions(*params.Filter)
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + columns + " FROM " + table)

	args := make([]any, 0, len(conditions))
	for i, cond := range conditions {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, cond.Value)
		fmt.Fprintf(&sb, "%s = $%d", cond.Column, len(args))
	}
	sb.WriteString(" ORDER BY created_at, id")

	return Statement{SQL: sb.String(), Args: args}, nil
}

func filterConditions(f model.UserFilter) []Assignment {
	var out []Assignment
	if f.Name != "" {
		out = append(out, Assignment{Column: "name", Value: f.Name})
	}
	if f.Email != "" {
		out = append(out, Assignment{Column: "email", Value: f.Email})
	}
	if f.Role != "" {
		out = append(out, Assignment{Column: "role", Value: string(f.Role)})
	}
	return out
}

// Insert builds the statement creating user and returning the stored row.
func Insert(user model.User) Statement {
	return Statement{
		SQL: "INSERT INTO " + table + " (id, name, email, role) VALUES ($1, $2, $3, $4) RETURNING " + columns,
		Args: []any{
			user.ID, user.Name, user.Email, string(user.Role),
		},
	}
}

// Assignments returns the updatable fields present in payload, in column order.
// Only name, email and role can be updated.
func Assignments(payload model.UserPayload) []Assignment {
	var out []Assignment
	if v := payload.NameValue(); v != "" {
		out = append(out, Assignment{Column: "name", Value: v})
	}
	if v := payload.EmailValue(); v != "" {
		out = append(out, Assignment{Column: "email", Value: v})
	}
	if v := payload.RoleValue(); v != "" {
		out = append(out, Assignment{Column: "role", Value: v})
	}
	return out
}

// Update builds the statement applying assignments to the user with id.
func Update(id uuid.UUID, assignments []Assignment) (Statement, error) {
	if len(assignments) == 0 {
		return Statement{}, ErrNoAssignments
	}

	sets := make([]string, 0, len(assignments)+1)
	args := make([]any, 0, len(assignments)+1)
	for _, a := range assignments {
		args = append(args, a.Value)
		sets = append(sets, fmt.Sprintf("%s = $%d", a.Column, len(args)))
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), columns)

	return Statement{SQL: sql, Args: args}, nil
}

// Delete builds the statement removing the user with id.
func Delete(id uuid.UUID) Statement {
	return Statement{
		SQL:  "DELETE FROM " + table + " WHERE id = $1",
		Args: []any{id},
	}
}
