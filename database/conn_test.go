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

package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotaroh/schoolbun/database"
	"github.com/kotaroh/schoolbun/models"
)

// InitDB with EnableMigrateOnStartup must create the whole schema in one
// pass. The models carry m2m tags, so their join tables have to reach Bun
// before the first table creation references them.
func TestInitDBWithMigrateOnStartup(t *testing.T) {
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

	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.Teacher)(nil), (*models.Class)(nil), (*models.Club)(nil),
		(*models.Student)(nil), (*models.Email)(nil), (*models.StudentClass)(nil),
		(*models.TeacherClass)(nil), (*models.StudentClub)(nil), (*models.SeedRun)(nil),
	} {
		n, err := db.NewSelect().Model(model).Count(ctx)
		require.NoError(t, err, "%T", model)
		assert.Zero(t, n, "%T", model)
	}

	// An m2m load proves the join table resolved through Bun's registry.
	teacher := &models.Teacher{Name: "Homeroom"}
	_, err = db.NewInsert().Model(teacher).Exec(ctx)
	require.NoError(t, err)
	class := &models.Class{Name: "class of Sapporo"}
	_, err = db.NewInsert().Model(class).Exec(ctx)
	require.NoError(t, err)
	_, err = db.NewInsert().
		Model(&models.TeacherClass{TeacherID: teacher.ID, ClassID: class.ID}).
		Exec(ctx)
	require.NoError(t, err)

	var teachers []*models.Teacher
	require.NoError(t, db.NewSelect().Model(&teachers).Relation("Classes").Scan(ctx))
	require.Len(t, teachers, 1)
	require.Len(t, teachers[0].Classes, 1)
	assert.Equal(t, class.ID, teachers[0].Classes[0].ID)
}
