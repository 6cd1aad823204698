package database

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT * FROM users",
			expected: "SELECT * FROM users",
		},
		{
			name:     "single placeholder",
			query:    "SELECT * FROM users WHERE id = ?",
			expected: "SELECT * FROM users WHERE id = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "UPDATE game_records SET guesses = ?, completed = ? WHERE id = ? AND version = ?",
			expected: "UPDATE game_records SET guesses = $1, completed = $2 WHERE id = $3 AND version = $4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDialectRewriteQuery(t *testing.T) {
	query := "SELECT * FROM users WHERE id = ?"

	if got := (&SQLiteDialect{}).RewriteQuery(query); got != query {
		t.Errorf("sqlite RewriteQuery() = %q, want unchanged", got)
	}
	if got := (&MySQLDialect{}).RewriteQuery(query); got != query {
		t.Errorf("mysql RewriteQuery() = %q, want unchanged", got)
	}
	if got := (&PostgresDialect{}).RewriteQuery(query); got != "SELECT * FROM users WHERE id = $1" {
		t.Errorf("postgres RewriteQuery() = %q, want numbered placeholders", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
		want    bool
	}{
		{
			name:    "sqlite unique constraint",
			dialect: &SQLiteDialect{},
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want:    true,
		},
		{
			name:    "sqlite other error",
			dialect: &SQLiteDialect{},
			err:     sqlite3.Error{Code: sqlite3.ErrBusy},
			want:    false,
		},
		{
			name:    "postgres unique violation",
			dialect: &PostgresDialect{},
			err:     &pq.Error{Code: "23505"},
			want:    true,
		},
		{
			name:    "postgres other error",
			dialect: &PostgresDialect{},
			err:     &pq.Error{Code: "23503"},
			want:    false,
		},
		{
			name:    "mysql duplicate entry",
			dialect: &MySQLDialect{},
			err:     &mysql.MySQLError{Number: 1062},
			want:    true,
		},
		{
			name:    "mysql other error",
			dialect: &MySQLDialect{},
			err:     &mysql.MySQLError{Number: 1451},
			want:    false,
		},
		{
			name:    "plain error",
			dialect: &SQLiteDialect{},
			err:     errors.New("boom"),
			want:    false,
		},
		{
			name:    "nil error",
			dialect: &PostgresDialect{},
			err:     nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMigrationsSubdir(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{&SQLiteDialect{}, "sqlite"},
		{&PostgresDialect{}, "postgres"},
		{&MySQLDialect{}, "mysql"},
	}
	for _, tt := range tests {
		if got := tt.dialect.MigrationsSubdir(); got != tt.want {
			t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.want)
		}
	}
}
