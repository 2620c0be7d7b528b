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

package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLogLevel("WARNING"))
	assert.Equal(t, logrus.InfoLevel, ParseLogLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLogLevel("nonsense"))
}

func TestNewLoggerRegistry(t *testing.T) {
	a := NewLogger("REGISTRY_TEST")
	b := NewLogger("REGISTRY_TEST")
	assert.Same(t, a, b)

	other := NewLogger("REGISTRY_OTHER")
	assert.NotSame(t, a, other)
}

func TestNewLoggerEnvLevelOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL_ENVLEVEL", "error")
	l := NewLogger("ENVLEVEL")
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("LEVEL_TEST")
	assert.True(t, SetLoggerLevel("LEVEL_TEST", "debug"))
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.False(t, SetLoggerLevel("NOT_REGISTERED", "debug"))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("ENV_DEFAULT_STR", "set")
	assert.Equal(t, "set", EnvDefaultString("ENV_DEFAULT_STR", "fallback"))
	assert.Equal(t, "fallback", EnvDefaultString("ENV_DEFAULT_STR_MISSING", "fallback"))

	t.Setenv("ENV_DEFAULT_BOOL", "yes")
	assert.True(t, EnvDefaultBool("ENV_DEFAULT_BOOL", false))
	t.Setenv("ENV_DEFAULT_BOOL", "off")
	assert.False(t, EnvDefaultBool("ENV_DEFAULT_BOOL", true))
	t.Setenv("ENV_DEFAULT_BOOL", "whatever")
	assert.True(t, EnvDefaultBool("ENV_DEFAULT_BOOL", true))
	assert.False(t, EnvDefaultBool("ENV_DEFAULT_BOOL_MISSING", false))
}
