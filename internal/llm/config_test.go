package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 6000, cfg.Tasks[TaskCoach].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("RAIMON_LLM_TIMEOUT_MS", "9000")
	t.Setenv("RAIMON_LLM_COACH_TIMEOUT_MS", "4000")
	t.Setenv("RAIMON_LLM_INSIGHT_TIMEOUT_MS", "15000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskCoach))
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskInsight))
	assert.Equal(t, 6000, cfg.TaskTimeout(TaskMotivation))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("RAIMON_LLM_COACH_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 6000, cfg.TaskTimeout(TaskCoach))
}

func TestLoadConfig_EnabledAndModel(t *testing.T) {
	t.Setenv("RAIMON_LLM_ENABLED", "true")
	t.Setenv("RAIMON_LLM_MODEL", "qwen2.5")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
}
