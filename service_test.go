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

package schoolbun

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotaroh/schoolbun/database"
	"github.com/kotaroh/schoolbun/models"
	"github.com/kotaroh/schoolbun/seed"
	"github.com/kotaroh/schoolbun/types"
)

func initServiceTestDB(t *testing.T) {
	t.Helper()

	cfg := &database.Config{ConnectionConfig: *database.DefaultConnectionConfig()}
	cfg.ConnectionConfig.Type = "sqlite"
	cfg.ConnectionConfig.DBName = filepath.Join(t.TempDir(), "school.db")
	cfg.ConnectionConfig.MaxOpenConns = 1
	cfg.ConnectionConfig.MaxIdleConns = 1
	cfg.ConnectionConfig.HealthCheckInterval = 0
	cfg.DataMigrateConfig.EnableMigrateOnStartup = true

	db, err := database.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, database.CloseDB()) })

	profile := seed.SmallProfile()
	profile.FakerSeed = 11
	_, err = seed.NewSeeder(db, profile).Run(context.Background())
	require.NoError(t, err)
}

func TestServiceCrud(t *testing.T) {
	initServiceTestDB(t)
	ctx := context.Background()

	svc := NewService[models.Student]()
	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	student := &models.Student{
		Name:      "Service Student",
		Gender:    models.GenderFemale,
		Score:     90,
		UpdatedAt: time.Now(),
	}
	require.NoError(t, svc.Save(ctx, student))
	require.Positive(t, student.ID)

	got, err := svc.Get(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Service Student", got.Name)

	got.Score = 95
	require.NoError(t, svc.Update(ctx, got))

	n, err := svc.Count(ctx, types.NewQueryFilter("score = ?", 95))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, svc.Delete(ctx, student.ID))
	_, err = svc.Get(ctx, student.ID)
	assert.Error(t, err)
}

func TestServicePage(t *testing.T) {
	initServiceTestDB(t)
	ctx := context.Background()

	svc := NewService[models.Student]()
	total, err := svc.Count(ctx, nil)
	require.NoError(t, err)

	page, err := svc.Page(ctx, types.NewPageRequest(2, 5, nil, []string{"id ASC"}))
	require.NoError(t, err)
	assert.Equal(t, total, page.Total)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 2, page.Page)

	// Filtered page that matches nothing short-circuits with empty items.
	empty, err := svc.Page(ctx, types.NewPageRequest(1, 5, types.NewQueryFilter("score > ?", 1000), nil))
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Empty(t, empty.Items)
}

func TestServiceQueryAndBuilder(t *testing.T) {
	initServiceTestDB(t)
	ctx := context.Background()

	svc := NewService[models.Teacher]()
	teachers, err := svc.Query(ctx, "id <= ?", 3)
	require.NoError(t, err)
	assert.Len(t, teachers, 3)

	var names []string
	err = svc.SelectBuilder().
		Model((*models.Teacher)(nil)).
		Column("name").
		Order("id ASC").
		Limit(3).
		Scan(ctx, &names)
	require.NoError(t, err)
	assert.Len(t, names, 3)
}
