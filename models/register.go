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

import "github.com/kotaroh/schoolbun/database"

// Priorities order table creation so parents exist before children.
// Drops run in reverse.
func init() {
	database.RegisteredModel(database.NewModelAdapter((*Teacher)(nil), 1))
	database.RegisteredModel(database.NewModelAdapter((*Class)(nil), 2))
	database.RegisteredModel(database.NewModelAdapter((*Club)(nil), 3))
	database.RegisteredModel(database.NewModelAdapter((*Student)(nil), 4))
	database.RegisteredModel(database.NewModelAdapter((*Email)(nil), 5))
	database.RegisteredModel(database.NewModelAdapter((*StudentClass)(nil), 6))
	database.RegisteredModel(database.NewModelAdapter((*TeacherClass)(nil), 7))
	database.RegisteredModel(database.NewModelAdapter((*StudentClub)(nil), 8))
	database.RegisteredModel(database.NewModelAdapter((*SeedRun)(nil), 9))
}
