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

package models

import (
	"time"

	"github.com/kotaroh/schoolbun/types"
	"github.com/uptrace/bun"
)

// SeedRun is an audit record written once per seeder run. Counts holds the
// inserted row count per table as a JSON document.
type SeedRun struct {
	bun.BaseModel `bun:"table:seed_runs,alias:sr"`

	ID         string           `bun:"id,pk"`
	StartedAt  time.Time        `bun:"started_at,notnull"`
	DurationMS int64            `bun:"duration_ms,notnull"`
	Counts     types.JsonObject `bun:"counts,type:text"`
}
