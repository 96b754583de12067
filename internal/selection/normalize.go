package selection

import (
	"strconv"
	"strings"

	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
)

const (
	defaultDurationMin = 60
	minDurationMin     = 1
	maxDurationMin     = 1440

	defaultEnergy = 3
	minEnergy     = 1
	maxEnergy     = 5
)

// Field fallback chains for FieldMap candidates. The lookup order is part
// of the observable contract for legacy input and must not be reordered.
var (
	idFields       = []string{"task_id", "id"}
	durationFields = []string{"estimated_duration", "duration_min"}
	energyFields   = []string{"energy_requirement", "energy_req", "energy_level", "energy"}
)

// energyWords maps enum-word energy input to the 1-5 scale. Shared between
// candidate normalization and constraint validation.
var energyWords = map[string]int{
	"very_low":  1,
	"low":       2,
	"medium":    3,
	"med":       3,
	"high":      4,
	"very_high": 5,
	"extreme":   5,
}

// normalizeCandidate coerces any candidate variant into the uniform internal
// record. It only fails when no usable task id can be resolved; duration,
// energy, and score always fall back to safe defaults.
func normalizeCandidate(c Candidate) (scored, error) {
	switch v := c.(type) {
	case RawTask:
		return normalizeRawTask(v)
	case ScoredTask:
		return normalizeScoredTask(v)
	case FieldMap:
		return normalizeFieldMap(v)
	default:
		return scored{}, &contract.SelectionError{
			Code:    contract.ErrInvalidCandidate,
			Message: "unknown candidate shape",
		}
	}
}

func normalizeRawTask(v RawTask) (scored, error) {
	id, err := taskIDFromTask(v.Task)
	if err != nil {
		return scored{}, err
	}
	return scored{
		TaskID:    id,
		Source:    v,
		Duration:  domain.ClampInt(domain.IntFromPtrWithDefault(defaultDurationMin, v.Task.EstimatedMin), minDurationMin, maxDurationMin),
		EnergyReq: domain.ClampInt(domain.IntFromPtrWithDefault(defaultEnergy, v.Task.EnergyReq), minEnergy, maxEnergy),
	}, nil
}

func normalizeScoredTask(v ScoredTask) (scored, error) {
	id, err := taskIDFromTask(v.Task)
	if err != nil {
		return scored{}, err
	}
	codes := make([]string, len(v.ReasonCodes))
	copy(codes, v.ReasonCodes)
	return scored{
		TaskID:      id,
		Source:      v,
		Duration:    domain.ClampInt(domain.IntFromPtrWithDefault(defaultDurationMin, v.Task.EstimatedMin), minDurationMin, maxDurationMin),
		EnergyReq:   domain.ClampInt(domain.IntFromPtrWithDefault(defaultEnergy, v.Task.EnergyReq), minEnergy, maxEnergy),
		Score:       v.Score,
		ReasonCodes: codes,
	}, nil
}

func normalizeFieldMap(v FieldMap) (scored, error) {
	id := firstStringField(v, idFields)
	if strings.TrimSpace(id) == "" {
		return scored{}, &contract.SelectionError{
			Code:    contract.ErrInvalidCandidate,
			Message: "candidate has no usable task id",
		}
	}

	duration := defaultDurationMin
	if raw, ok := firstField(v, durationFields); ok {
		if n, ok := parseMinutes(raw); ok {
			duration = n
		}
	}

	energy := defaultEnergy
	if raw, ok := firstField(v, energyFields); ok {
		if n, ok := ParseEnergy(raw); ok {
			energy = n
		}
	}

	var score float64
	if raw, ok := v["score"]; ok {
		if f, ok := parseFloat(raw); ok {
			score = f
		}
	}

	return scored{
		TaskID:      strings.TrimSpace(id),
		Source:      v,
		Duration:    domain.ClampInt(duration, minDurationMin, maxDurationMin),
		EnergyReq:   domain.ClampInt(energy, minEnergy, maxEnergy),
		Score:       score,
		ReasonCodes: stringSliceField(v, "reason_codes"),
	}, nil
}

func taskIDFromTask(t *domain.Task) (string, error) {
	if t == nil || strings.TrimSpace(t.ID) == "" {
		return "", &contract.SelectionError{
			Code:    contract.ErrInvalidCandidate,
			Message: "candidate has no usable task id",
		}
	}
	return strings.TrimSpace(t.ID), nil
}

// directTaskID extracts a task id from a raw candidate without full
// normalization. Used by the degraded fallback_direct path.
func directTaskID(c Candidate) (string, bool) {
	switch v := c.(type) {
	case RawTask:
		id, err := taskIDFromTask(v.Task)
		return id, err == nil
	case ScoredTask:
		id, err := taskIDFromTask(v.Task)
		return id, err == nil
	case FieldMap:
		id := strings.TrimSpace(firstStringField(v, idFields))
		return id, id != ""
	default:
		// Shapes outside the closed set can still name themselves; the
		// degraded fallback_direct path uses only the id.
		if ider, ok := c.(interface{ TaskID() string }); ok {
			id := strings.TrimSpace(ider.TaskID())
			return id, id != ""
		}
		return "", false
	}
}

// candidatePriority resolves the priority attribute of a candidate for
// preference matching. Empty when the candidate carries none.
func candidatePriority(c Candidate) string {
	switch v := c.(type) {
	case RawTask:
		if v.Task != nil {
			return string(v.Task.Priority)
		}
	case ScoredTask:
		if v.Task != nil {
			return string(v.Task.Priority)
		}
	case FieldMap:
		return firstStringField(v, []string{"priority"})
	}
	return ""
}

// ParseEnergy parses an energy value from enum-word or numeric input.
// Words map per energyWords; numbers are accepted as int, float, or
// numeric string. Returns false when the input is unusable.
func ParseEnergy(raw any) (int, bool) {
	if s, ok := raw.(string); ok {
		if n, ok := energyWords[strings.ToLower(strings.TrimSpace(s))]; ok {
			return n, true
		}
	}
	return parseMinutes(raw)
}

func parseMinutes(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func parseFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func firstField(m FieldMap, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func firstStringField(m FieldMap, keys []string) string {
	raw, ok := firstField(m, keys)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

func stringSliceField(m FieldMap, key string) []string {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
