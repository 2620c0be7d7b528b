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

// Profile controls how many rows the seeder generates.
type Profile struct {
	Teachers int
	Classes  int
	Students int

	// Per-student email count range, inclusive.
	EmailsPerStudentMin int
	EmailsPerStudentMax int

	// Per-class teacher count range, inclusive.
	TeachersPerClassMin int
	TeachersPerClassMax int

	// Each student joins 0..ClubsPerStudentMax distinct clubs. Every student
	// always gets exactly one class.
	ClubsPerStudentMax int

	// FakerSeed makes generated data reproducible when non-zero.
	FakerSeed uint64
}

// DefaultProfile returns the standard row counts.
func DefaultProfile() *Profile {
	return &Profile{
		Teachers:            30,
		Classes:             10,
		Students:            300,
		EmailsPerStudentMin: 1,
		EmailsPerStudentMax: 3,
		TeachersPerClassMin: 1,
		TeachersPerClassMax: 3,
		ClubsPerStudentMax:  2,
	}
}

// SmallProfile returns reduced counts suitable for tests.
func SmallProfile() *Profile {
	return &Profile{
		Teachers:            10,
		Classes:             3,
		Students:            20,
		EmailsPerStudentMin: 1,
		EmailsPerStudentMax: 3,
		TeachersPerClassMin: 1,
		TeachersPerClassMax: 2,
		ClubsPerStudentMax:  2,
	}
}

// clubNames are fixed, the advisor of each club is taken from the first
// teachers in insertion order and the last club is left without one.
var clubNames = []string{
	"baseball club",
	"soccer club",
	"basketball club",
	"track and field club",
	"volleyball club",
	"tennis club",
	"hard tennis club",
	"badminton club",
	"brass band club",
	"art club",
}
