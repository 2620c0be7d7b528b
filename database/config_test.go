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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()
	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
	assert.True(t, cfg.EnableReconnect)
	assert.Equal(t, 3, cfg.MaxReconnectTries)
	assert.False(t, cfg.EnableQueryLog)
	assert.Equal(t, 2*time.Second, cfg.SlowQueryTime)
}

func TestLoadConfigFile(t *testing.T) {
	content := `
connection:
  type: sqlite
  dbname: ./school.db
  max_open_conns: 5
  max_idle_conns: 2
  enable_query_log: true
migrate:
  enable_migrate_on_startup: true
  enable_foreign_key: false
  foreign_key_file: configs/foreign_keys.yaml
init:
  filepath: configs/sql
  environment: dev
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.ConnectionConfig.Type)
	assert.Equal(t, "./school.db", cfg.ConnectionConfig.DBName)
	assert.Equal(t, 5, cfg.ConnectionConfig.MaxOpenConns)
	assert.Equal(t, 2, cfg.ConnectionConfig.MaxIdleConns)
	assert.True(t, cfg.ConnectionConfig.EnableQueryLog)
	assert.True(t, cfg.DataMigrateConfig.EnableMigrateOnStartup)
	assert.False(t, cfg.DataMigrateConfig.EnableForeignKey)
	assert.Equal(t, "configs/foreign_keys.yaml", cfg.DataMigrateConfig.ForeignKeyFile)
	assert.Equal(t, "configs/sql", cfg.DataInitConfig.Filepath)
	assert.Equal(t, "dev", cfg.DataInitConfig.Environment)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connection: [not a map"), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}
