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

import "github.com/kotaroh/schoolbun/types"

// Gender is an integer-backed enum stored in the students.gender column.
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

var _ types.BaseEnum = GenderMale

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) Number() int {
	if !g.IsValid() {
		return types.IllegalValue
	}
	return int(g)
}

func (g Gender) Name() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	}
	return types.IllegalName
}

func (g Gender) String() string { return g.Name() }

func (g Gender) Desc() string {
	switch g {
	case GenderMale:
		return "male student"
	case GenderFemale:
		return "female student"
	}
	return types.IllegalDesc
}
