package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestBuildMultiRowInsert(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		columns  []string
		rowCount int
		expected string
	}{
		{
			name:     "single row",
			table:    "knowledge_points",
			columns:  []string{"learning_set_id", "title", "importance"},
			rowCount: 1,
			expected: "INSERT INTO knowledge_points (learning_set_id, title, importance) VALUES (?, ?, ?)",
		},
		{
			name:     "multiple rows",
			table:    "knowledge_points",
			columns:  []string{"learning_set_id", "title", "importance"},
			rowCount: 3,
			expected: "INSERT INTO knowledge_points (learning_set_id, title, importance) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildMultiRowInsert(tt.table, tt.columns, tt.rowCount))
		})
	}
}

func TestIsLockConflict(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "deadlock",
			err:      &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"},
			expected: true,
		},
		{
			name:     "lock wait timeout",
			err:      &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"},
			expected: true,
		},
		{
			name:     "wrapped deadlock",
			err:      fmt.Errorf("record review: %w", &mysql.MySQLError{Number: 1213}),
			expected: true,
		},
		{
			name:     "other mysql error",
			err:      &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLockConflict(tt.err))
		})
	}
}
