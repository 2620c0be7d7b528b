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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileOrder(t *testing.T) {
	runner := NewSQLFixtureRunner(nil, "dev")

	assert.Equal(t, 1, runner.parseFileOrder("01_students.sql"))
	assert.Equal(t, 12, runner.parseFileOrder("12_clubs.sql"))
	assert.Equal(t, 999, runner.parseFileOrder("students.sql"))
	assert.Equal(t, 999, runner.parseFileOrder("_01_students.sql"))
}

func TestSplitSQLStatements(t *testing.T) {
	runner := NewSQLFixtureRunner(nil, "dev")

	content := `
-- seed students
INSERT INTO students (name, gender, updated_at)
VALUES ('a', 1, '2026-01-01');

INSERT INTO students (name, gender, updated_at) VALUES ('b', 2, '2026-01-01');

UPDATE students SET score = 100 WHERE name = 'a'
`
	statements := runner.splitSQLStatements(content)
	require.Len(t, statements, 3)
	assert.Contains(t, statements[0], "VALUES ('a', 1, '2026-01-01');")
	assert.Contains(t, statements[1], "('b', 2, '2026-01-01');")
	// Trailing statement without a semicolon is kept.
	assert.Contains(t, statements[2], "UPDATE students")
}

func TestSplitSQLStatementsEmpty(t *testing.T) {
	runner := NewSQLFixtureRunner(nil, "dev")
	assert.Empty(t, runner.splitSQLStatements("-- only comments\n\n-- here\n"))
}

func TestReplaceEnvVariables(t *testing.T) {
	runner := NewSQLFixtureRunner(nil, "staging")
	t.Setenv("SCHOOL_NAME", "north high")

	out := runner.replaceEnvVariables("INSERT INTO tags VALUES ('${ENVIRONMENT}', '${SCHOOL_NAME}')")
	assert.Equal(t, "INSERT INTO tags VALUES ('staging', 'north high')", out)

	stamped := runner.replaceEnvVariables("-- generated at ${TIMESTAMP}")
	assert.NotContains(t, stamped, "${TIMESTAMP}")
}

func TestGetSQLFilesOrdering(t *testing.T) {
	root := t.TempDir()
	commonDir := filepath.Join(root, "common")
	devDir := filepath.Join(root, "environments", "dev")
	require.NoError(t, os.MkdirAll(commonDir, 0o755))
	require.NoError(t, os.MkdirAll(devDir, 0o755))

	write := func(path string) {
		require.NoError(t, os.WriteFile(path, []byte("SELECT 1;"), 0o644))
	}
	write(filepath.Join(commonDir, "02_classes.sql"))
	write(filepath.Join(commonDir, "01_teachers.sql"))
	write(filepath.Join(commonDir, "readme.txt"))
	write(filepath.Join(devDir, "01_students.sql"))

	runner := NewSQLFixtureRunner(nil, "dev")
	runner.SetRootPath(root)

	files, err := runner.GetSQLFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "01_teachers.sql", files[0].Name)
	assert.Equal(t, "02_classes.sql", files[1].Name)
	assert.Equal(t, "01_students.sql", files[2].Name)
	assert.Equal(t, "common", files[0].Environment)
	assert.Equal(t, "dev", files[2].Environment)
}

func TestGetSQLFilesMissingDirs(t *testing.T) {
	runner := NewSQLFixtureRunner(nil, "dev")
	runner.SetRootPath(filepath.Join(t.TempDir(), "does-not-exist"))

	files, err := runner.GetSQLFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}
