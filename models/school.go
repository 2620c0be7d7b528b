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
	"github.com/uptrace/bun"
)

// Teacher teaches one or more classes and may advise a club.
type Teacher struct {
	bun.BaseModel `bun:"table:teachers,alias:t"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`

	Classes []*Class `bun:"m2m:teacher_classes,join:Teacher=Class"`
}

// Class is a homeroom class. Every student belongs to exactly one class,
// enforced by student_classes using student_id as its primary key.
type Class struct {
	bun.BaseModel `bun:"table:classes,alias:c"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`

	Students []*Student `bun:"m2m:student_classes,join:Class=Student"`
	Teachers []*Teacher `bun:"m2m:teacher_classes,join:Class=Teacher"`
}

// Club is an after-school club. The advisor is optional, teacher_id stays
// NULL until one is assigned.
type Club struct {
	bun.BaseModel `bun:"table:clubs,alias:cb"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Name      string `bun:"name,notnull"`
	TeacherID *int64 `bun:"teacher_id"`

	Advisor *Teacher   `bun:"rel:belongs-to,join:teacher_id=id"`
	Members []*Student `bun:"m2m:student_clubs,join:Club=Student"`
}

// StudentClass enrolls a student into a class. student_id alone is the
// primary key so a student can never be enrolled twice.
type StudentClass struct {
	bun.BaseModel `bun:"table:student_classes,alias:sc"`

	StudentID int64 `bun:"student_id,pk"`
	ClassID   int64 `bun:"class_id,notnull"`

	Student *Student `bun:"rel:belongs-to,join:student_id=id"`
	Class   *Class   `bun:"rel:belongs-to,join:class_id=id"`
}

// TeacherClass assigns a teacher to a class.
type TeacherClass struct {
	bun.BaseModel `bun:"table:teacher_classes,alias:tc"`

	TeacherID int64 `bun:"teacher_id,pk"`
	ClassID   int64 `bun:"class_id,pk"`

	Teacher *Teacher `bun:"rel:belongs-to,join:teacher_id=id"`
	Class   *Class   `bun:"rel:belongs-to,join:class_id=id"`
}

// StudentClub registers a student as a club member.
type StudentClub struct {
	bun.BaseModel `bun:"table:student_clubs,alias:scb"`

	StudentID int64 `bun:"student_id,pk"`
	ClubID    int64 `bun:"club_id,pk"`

	Student *Student `bun:"rel:belongs-to,join:student_id=id"`
	Club    *Club    `bun:"rel:belongs-to,join:club_id=id"`
}
