/*
 * Copyright 2026 kotaroh.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassifySQLErrorMySQL(t *testing.T) {
	cases := []struct {
		errno uint16
		want  SQLError
	}{
		{1054, NoColumnErr},
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1146, NoTableErr},
		{1050, ExistTableErr},
		{1451, ForeignKeyViolationErr},
		{1452, ForeignKeyViolationErr},
		{3819, CheckConstraintViolationErr},
		{1265, DataTruncatedErr},
	}
	for _, tc := range cases {
		kind, ok := ClassifySQLError(&mysql.MySQLError{Number: tc.errno})
		assert.True(t, ok, "errno %d", tc.errno)
		assert.Equal(t, tc.want, kind, "errno %d", tc.errno)
	}

	// Unknown errno is still recognized as a MySQL error.
	kind, ok := ClassifySQLError(&mysql.MySQLError{Number: 9999})
	assert.True(t, ok)
	assert.Equal(t, UnknownErr, kind)
}

func TestClassifySQLErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", &mysql.MySQLError{Number: 1062})
	kind, ok := ClassifySQLError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, DuplicateKeyErr, kind)
	assert.True(t, IsDuplicateKeyError(wrapped))
}

func TestClassifySQLErrorByMessage(t *testing.T) {
	cases := []struct {
		msg  string
		want SQLError
	}{
		{"SQL logic error: no such table: students (1)", NoTableErr},
		{"ERROR: relation \"students\" does not exist (SQLSTATE 42P01)", NoTableErr},
		{"no such column: s.nickname", NoColumnErr},
		{"table students already exists", ExistTableErr},
		{"UNIQUE constraint failed: emails.email, emails.student_id", DuplicateKeyErr},
		{"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)", DuplicateKeyErr},
		{"NOT NULL constraint failed: students.name", NotNullViolationErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
		{"CHECK constraint failed: score", CheckConstraintViolationErr},
		{"Data truncated for column 'score' at row 1", DataTruncatedErr},
	}
	for _, tc := range cases {
		kind, ok := ClassifySQLError(errors.New(tc.msg))
		assert.True(t, ok, tc.msg)
		assert.Equal(t, tc.want, kind, tc.msg)
	}
}

func TestClassifySQLErrorUnrecognized(t *testing.T) {
	kind, ok := ClassifySQLError(errors.New("connection refused"))
	assert.False(t, ok)
	assert.Equal(t, UnknownErr, kind)

	_, ok = ClassifySQLError(nil)
	assert.False(t, ok)
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(errors.New("UNIQUE constraint failed: students.id")))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsMissingTableError(errors.New("no such table: seed_runs")))
	assert.False(t, IsDuplicateKeyError(errors.New("disk I/O error")))
}
