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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	req := NewDefaultPageRequest(0, 0)
	assert.Equal(t, 1, req.GetPage())
	assert.Equal(t, 10, req.GetPageSize())
	assert.Equal(t, 0, req.GetOffset())
	assert.Nil(t, req.GetFilter())
	assert.Empty(t, req.GetOrders())
}

func TestPageRequestOffset(t *testing.T) {
	req := NewDefaultPageRequest(3, 20)
	assert.Equal(t, 40, req.GetOffset())
}

func TestPageRequestWithFilterAndOrders(t *testing.T) {
	filter := NewQueryFilter("score >= ?", 60)
	req := NewPageRequest(2, 5, filter, []string{"id DESC"})

	assert.Equal(t, filter, req.GetFilter())
	assert.Equal(t, "score >= ?", req.GetFilter().Schema)
	assert.Equal(t, []interface{}{60}, req.GetFilter().Args)
	assert.Equal(t, []string{"id DESC"}, req.GetOrders())
	assert.Equal(t, 5, req.GetOffset())
}

func TestNewDefaultPagination(t *testing.T) {
	p := NewDefaultPagination[struct{}](2, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.Zero(t, p.Total)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}
