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

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/kotaroh/schoolbun/types"
)

type course struct {
	bun.BaseModel `bun:"table:courses,alias:co"`

	ID   int64  `bun:"id,pk"`
	Name string `bun:"name"`
}

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestGetOne(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`^SELECT .+ FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(7), "algebra"))

	repo := NewRepository[course](db)
	got, err := repo.GetOne(context.Background(), 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, got.ID)
	assert.Equal(t, "algebra", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOneNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`^SELECT .+ FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	repo := NewRepository[course](db)
	_, err := repo.GetOne(context.Background(), 7)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestQuery(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`^SELECT .+ FROM "courses" .+ WHERE \(name LIKE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "algebra").
			AddRow(int64(2), "art history"))

	repo := NewRepository[course](db)
	got, err := repo.Query(context.Background(), "name LIKE ?", "a%")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "art history", got[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountWithFilter(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`^SELECT count\(\*\) FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewRepository[course](db)
	n, err := repo.Count(context.Background(), types.NewQueryFilter("name LIKE ?", "a%"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestExists(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`^SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewRepository[course](db)
	ok, err := repo.Exists(context.Background(), "id = ?", 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`^DELETE FROM "courses"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository[course](db)
	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUsesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`^INSERT INTO "courses" .+ ON CONFLICT \(id\) DO UPDATE SET .*EXCLUDED`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository[course](db)
	err := repo.Upsert(context.Background(), []string{"name"}, []string{"id"}, &course{ID: 7, Name: "geometry"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertRejectsEmptyFields(t *testing.T) {
	db, _ := newMockDB(t)

	repo := NewRepository[course](db)
	err := repo.Upsert(context.Background(), nil, nil, &course{ID: 1})
	assert.Error(t, err)
}

func TestPageShortCircuitsOnZeroTotal(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`^SELECT count\(\*\) FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewRepository[course](db)
	page, err := repo.Page(context.Background(), types.NewDefaultPageRequest(1, 10))
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
