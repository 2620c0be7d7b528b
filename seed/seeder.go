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

package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/kotaroh/schoolbun/database"
	"github.com/kotaroh/schoolbun/models"
	"github.com/kotaroh/schoolbun/repository"
	"github.com/kotaroh/schoolbun/types"
)

// Seeder drops, recreates, and repopulates the school schema.
type Seeder struct {
	db      *bun.DB
	faker   *gofakeit.Faker
	profile *Profile
	logger  database.Logger
}

// NewSeeder creates a seeder for the given database. A nil profile falls
// back to DefaultProfile.
func NewSeeder(db *bun.DB, profile *Profile) *Seeder {
	if profile == nil {
		profile = DefaultProfile()
	}
	return &Seeder{
		db:      db,
		faker:   gofakeit.New(profile.FakerSeed),
		profile: profile,
		logger:  database.GetLogger(),
	}
}

// Reset drops all registered tables and recreates them via migrations.
// Stale state left behind by a mutating example run disappears with the
// tables.
func (s *Seeder) Reset(ctx context.Context) error {
	mm := database.NewMigrationManager(s.db, s.logger)
	if err := mm.DropAllTables(ctx); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return mm.RunMigrations(ctx)
}

// Run resets the schema and inserts randomized rows for every table, then
// writes a SeedRun audit record with per-table counts.
func (s *Seeder) Run(ctx context.Context) (*models.SeedRun, error) {
	start := time.Now()
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}

	counts := types.JsonObject{}

	teacherIDs, err := s.seedTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed teachers: %w", err)
	}
	counts["teachers"] = len(teacherIDs)

	classIDs, err := s.seedClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed classes: %w", err)
	}
	counts["classes"] = len(classIDs)

	clubIDs, err := s.seedClubs(ctx, teacherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to seed clubs: %w", err)
	}
	counts["clubs"] = len(clubIDs)

	studentIDs, err := s.seedStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed students: %w", err)
	}
	counts["students"] = len(studentIDs)

	emailCount, err := s.seedEmails(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to seed emails: %w", err)
	}
	counts["emails"] = emailCount

	tcCount, err := s.seedTeacherClasses(ctx, teacherIDs, classIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to seed teacher_classes: %w", err)
	}
	counts["teacher_classes"] = tcCount

	scCount, err := s.seedStudentClasses(ctx, studentIDs, classIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to seed student_classes: %w", err)
	}
	counts["student_classes"] = scCount

	clubMemberCount, err := s.seedStudentClubs(ctx, studentIDs, clubIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to seed student_clubs: %w", err)
	}
	counts["student_clubs"] = clubMemberCount

	run := &models.SeedRun{
		ID:         uuid.NewString(),
		StartedAt:  start,
		DurationMS: time.Since(start).Milliseconds(),
		Counts:     counts,
	}
	if _, err := s.db.NewInsert().Model(run).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record seed run: %w", err)
	}

	s.logger.Info("Seeding completed", "run_id", run.ID, "duration_ms", run.DurationMS)
	return run, nil
}

// ApplyFixtures executes extra SQL fixture files after seeding.
func (s *Seeder) ApplyFixtures(environment string) error {
	return database.RunSQLFixtures(environment)
}

func (s *Seeder) seedTeachers(ctx context.Context) ([]int64, error) {
	teachers := make([]*models.Teacher, 0, s.profile.Teachers)
	for i := 0; i < s.profile.Teachers; i++ {
		teachers = append(teachers, &models.Teacher{Name: s.faker.Name()})
	}
	repo := repository.NewRepository[models.Teacher](s.db)
	if err := repo.Create(ctx, teachers...); err != nil {
		return nil, err
	}
	return s.selectIDs(ctx, (*models.Teacher)(nil))
}

func (s *Seeder) seedClasses(ctx context.Context) ([]int64, error) {
	classes := make([]*models.Class, 0, s.profile.Classes)
	for i := 0; i < s.profile.Classes; i++ {
		classes = append(classes, &models.Class{
			Name: fmt.Sprintf("class of %s", s.faker.City()),
		})
	}
	repo := repository.NewRepository[models.Class](s.db)
	if err := repo.Create(ctx, classes...); err != nil {
		return nil, err
	}
	return s.selectIDs(ctx, (*models.Class)(nil))
}

// seedClubs inserts the fixed club list. Advisors come from the first
// teachers in id order and the last club intentionally has none, the
// relationship examples need a NULL advisor to demonstrate.
func (s *Seeder) seedClubs(ctx context.Context, teacherIDs []int64) ([]int64, error) {
	clubs := make([]*models.Club, 0, len(clubNames))
	for i, name := range clubNames {
		club := &models.Club{Name: name}
		if i < len(clubNames)-1 && i < len(teacherIDs) {
			id := teacherIDs[i]
			club.TeacherID = &id
		}
		clubs = append(clubs, club)
	}
	repo := repository.NewRepository[models.Club](s.db)
	if err := repo.Create(ctx, clubs...); err != nil {
		return nil, err
	}
	return s.selectIDs(ctx, (*models.Club)(nil))
}

func (s *Seeder) seedStudents(ctx context.Context) ([]int64, error) {
	now := time.Now()
	students := make([]*models.Student, 0, s.profile.Students)
	for i := 0; i < s.profile.Students; i++ {
		gender := models.Gender(s.faker.Number(1, 2))
		students = append(students, &models.Student{
			Name:      s.faker.Name(),
			Gender:    gender,
			Address:   s.faker.Address().Address,
			Score:     s.faker.Number(0, 100),
			UpdatedAt: now,
		})
	}
	repo := repository.NewRepository[models.Student](s.db)
	if err := repo.Create(ctx, students...); err != nil {
		return nil, err
	}
	return s.selectIDs(ctx, (*models.Student)(nil))
}

func (s *Seeder) seedEmails(ctx context.Context, studentIDs []int64) (int, error) {
	var emails []*models.Email
	for _, studentID := range studentIDs {
		count := s.faker.Number(s.profile.EmailsPerStudentMin, s.profile.EmailsPerStudentMax)
		seen := make(map[string]struct{}, count)
		for len(seen) < count {
			addr := s.faker.Email()
			if _, dup := seen[addr]; dup {
				continue
			}
			seen[addr] = struct{}{}
			emails = append(emails, &models.Email{Email: addr, StudentID: studentID})
		}
	}
	repo := repository.NewRepository[models.Email](s.db)
	if err := repo.Create(ctx, emails...); err != nil {
		return 0, err
	}
	return len(emails), nil
}

func (s *Seeder) seedTeacherClasses(ctx context.Context, teacherIDs, classIDs []int64) (int, error) {
	var assignments []*models.TeacherClass
	for _, classID := range classIDs {
		count := s.faker.Number(s.profile.TeachersPerClassMin, s.profile.TeachersPerClassMax)
		for _, teacherID := range s.sample(teacherIDs, count) {
			assignments = append(assignments, &models.TeacherClass{
				TeacherID: teacherID,
				ClassID:   classID,
			})
		}
	}
	repo := repository.NewRepository[models.TeacherClass](s.db)
	if err := repo.Create(ctx, assignments...); err != nil {
		return 0, err
	}
	return len(assignments), nil
}

func (s *Seeder) seedStudentClasses(ctx context.Context, studentIDs, classIDs []int64) (int, error) {
	enrollments := make([]*models.StudentClass, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		enrollments = append(enrollments, &models.StudentClass{
			StudentID: studentID,
			ClassID:   classIDs[s.faker.Number(0, len(classIDs)-1)],
		})
	}
	repo := repository.NewRepository[models.StudentClass](s.db)
	if err := repo.Create(ctx, enrollments...); err != nil {
		return 0, err
	}
	return len(enrollments), nil
}

func (s *Seeder) seedStudentClubs(ctx context.Context, studentIDs, clubIDs []int64) (int, error) {
	var memberships []*models.StudentClub
	for _, studentID := range studentIDs {
		count := s.faker.Number(0, s.profile.ClubsPerStudentMax)
		for _, clubID := range s.sample(clubIDs, count) {
			memberships = append(memberships, &models.StudentClub{
				StudentID: studentID,
				ClubID:    clubID,
			})
		}
	}
	if len(memberships) == 0 {
		return 0, nil
	}
	repo := repository.NewRepository[models.StudentClub](s.db)
	if err := repo.Create(ctx, memberships...); err != nil {
		return 0, err
	}
	return len(memberships), nil
}

// sample returns n distinct values picked at random.
func (s *Seeder) sample(ids []int64, n int) []int64 {
	if n >= len(ids) {
		n = len(ids)
	}
	if n <= 0 {
		return nil
	}
	shuffled := make([]int64, len(ids))
	copy(shuffled, ids)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.faker.Number(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}

func (s *Seeder) selectIDs(ctx context.Context, model interface{}) ([]int64, error) {
	var ids []int64
	err := s.db.NewSelect().
		Model(model).
		Column("id").
		Order("id ASC").
		Scan(ctx, &ids)
	return ids, err
}
