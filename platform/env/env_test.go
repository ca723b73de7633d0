package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("SOME_VAR", "value")
	assert.Equal(t, "value", OrDefault(log, "SOME_VAR", "fallback"))
	assert.Equal(t, "fallback", OrDefault(log, "UNSET_VAR", "fallback"))
}

func TestDurationDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("SOME_DURATION", "30s")
	assert.Equal(t, 30*time.Second, DurationDefault(log, "SOME_DURATION", "5s"))
	assert.Equal(t, 5*time.Second, DurationDefault(log, "UNSET_DURATION", "5s"))
}

func TestIntDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, IntDefault(log, "SOME_INT", "1"))
	assert.Equal(t, 1, IntDefault(log, "UNSET_INT", "1"))
}

func TestBoolDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("SOME_BOOL", "true")
	assert.True(t, BoolDefault(log, "SOME_BOOL", "f"))
	assert.False(t, BoolDefault(log, "UNSET_BOOL", "f"))
}
