package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_RawTask_Defaults(t *testing.T) {
	task := newTask("t-1", 0, 0)
	task.EstimatedMin = nil
	task.EnergyReq = nil

	n, err := normalizeCandidate(RawTask{Task: task})
	require.NoError(t, err)

	assert.Equal(t, "t-1", n.TaskID)
	assert.Equal(t, 60, n.Duration, "missing duration defaults to 60")
	assert.Equal(t, 3, n.EnergyReq, "missing energy defaults to 3")
	assert.Equal(t, 0.0, n.Score, "score defaults to 0.0")
	assert.Empty(t, n.ReasonCodes)
}

func TestNormalize_Clamping(t *testing.T) {
	over := newTask("t-1", 5000, 9)
	n, err := normalizeCandidate(RawTask{Task: over})
	require.NoError(t, err)
	assert.Equal(t, 1440, n.Duration)
	assert.Equal(t, 5, n.EnergyReq)

	under := newTask("t-2", -10, 0)
	n, err = normalizeCandidate(RawTask{Task: under})
	require.NoError(t, err)
	assert.Equal(t, 1, n.Duration)
	assert.Equal(t, 1, n.EnergyReq)
}

func TestNormalize_ScoredTask_CopiesScoreAndReasons(t *testing.T) {
	n, err := normalizeCandidate(ScoredTask{
		Task:        newTask("t-1", 45, 2),
		Score:       87.5,
		ReasonCodes: []string{"upstream_urgent"},
	})
	require.NoError(t, err)

	assert.Equal(t, 87.5, n.Score)
	assert.Equal(t, []string{"upstream_urgent"}, n.ReasonCodes)
	assert.Equal(t, 45, n.Duration)
	assert.Equal(t, 2, n.EnergyReq)
}

func TestNormalize_FieldMap_FallbackOrder(t *testing.T) {
	n, err := normalizeCandidate(FieldMap{
		"id":                 "generic-id",
		"task_id":            "explicit-id", // wins over "id"
		"duration_min":       15,
		"estimated_duration": 90, // wins over "duration_min"
		"energy":             1,
		"energy_level":       "high", // wins over "energy"
	})
	require.NoError(t, err)

	assert.Equal(t, "explicit-id", n.TaskID)
	assert.Equal(t, 90, n.Duration)
	assert.Equal(t, 4, n.EnergyReq, `"high" maps to 4 via the shared enum mapping`)
}

func TestNormalize_FieldMap_EnergyWords(t *testing.T) {
	cases := map[string]int{
		"very_low":  1,
		"low":       2,
		"med":       3,
		"medium":    3,
		"high":      4,
		"very_high": 5,
		"extreme":   5,
		"HIGH":      4, // case-insensitive
	}
	for word, want := range cases {
		n, err := normalizeCandidate(FieldMap{"task_id": "t", "energy_requirement": word})
		require.NoError(t, err, word)
		assert.Equal(t, want, n.EnergyReq, word)
	}
}

func TestNormalize_FieldMap_NumericStrings(t *testing.T) {
	n, err := normalizeCandidate(FieldMap{
		"task_id":            "t-1",
		"estimated_duration": "25",
		"energy_requirement": "4",
		"score":              "12.5",
	})
	require.NoError(t, err)

	assert.Equal(t, 25, n.Duration)
	assert.Equal(t, 4, n.EnergyReq)
	assert.Equal(t, 12.5, n.Score)
}

func TestNormalize_FieldMap_MalformedFieldsNeverFail(t *testing.T) {
	n, err := normalizeCandidate(FieldMap{
		"task_id":            "t-1",
		"estimated_duration": map[string]any{"nested": true},
		"energy_requirement": "not-a-level",
		"score":              []string{"x"},
	})
	require.NoError(t, err, "malformed non-id fields degrade to defaults")

	assert.Equal(t, 60, n.Duration)
	assert.Equal(t, 3, n.EnergyReq)
	assert.Equal(t, 0.0, n.Score)
}

func TestNormalize_MissingID_IsFatalForCandidate(t *testing.T) {
	_, err := normalizeCandidate(FieldMap{"estimated_duration": 30})
	assert.Error(t, err)

	_, err = normalizeCandidate(FieldMap{"task_id": "  \t "})
	assert.Error(t, err, "whitespace-only id is unusable")

	_, err = normalizeCandidate(RawTask{Task: nil})
	assert.Error(t, err)
}

func TestNormalize_FieldMap_ReasonCodesCopied(t *testing.T) {
	n, err := normalizeCandidate(FieldMap{
		"task_id":      "t-1",
		"reason_codes": []any{"a", "b", 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, n.ReasonCodes, "non-string entries are dropped")
}
