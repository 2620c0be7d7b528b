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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kotaroh/schoolbun/types"
)

func TestGenderValid(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.Equal(t, 1, GenderMale.Number())
	assert.Equal(t, 2, GenderFemale.Number())
	assert.Equal(t, "male", GenderMale.Name())
	assert.Equal(t, "female", GenderFemale.String())
}

func TestGenderIllegal(t *testing.T) {
	for _, g := range []Gender{0, 3, -1} {
		assert.False(t, g.IsValid())
		assert.Equal(t, types.IllegalValue, g.Number())
		assert.Equal(t, types.IllegalName, g.Name())
		assert.Equal(t, types.IllegalDesc, g.Desc())
	}
}
