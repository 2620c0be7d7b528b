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

	"github.com/uptrace/bun"
)

// Student is the central entity of the sandbox. UpdatedAt doubles as the
// version column for optimistic locking, it is set by application code on
// every write rather than by a database default so the stored value
// round-trips exactly.
type Student struct {
	bun.BaseModel `bun:"table:students,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull"`
	Gender    Gender    `bun:"gender,notnull"`
	Address   string    `bun:"address"`
	Score     int       `bun:"score,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`

	Emails     []*Email      `bun:"rel:has-many,join:id=student_id"`
	Enrollment *StudentClass `bun:"rel:has-one,join:id=student_id"`
	Clubs      []*Club       `bun:"m2m:student_clubs,join:Student=Club"`
}

// Touch bumps the version column before an update.
func (s *Student) Touch() {
	s.UpdatedAt = time.Now()
}

// Email belongs to a student. The address alone is not unique, the same
// address may be registered by different students, so the primary key is
// composite.
type Email struct {
	bun.BaseModel `bun:"table:emails,alias:e"`

	Email     string `bun:"email,pk"`
	StudentID int64  `bun:"student_id,pk"`

	Student *Student `bun:"rel:belongs-to,join:student_id=id"`
}
