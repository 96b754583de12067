package selection

import (
	"fmt"

	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
)

// Constraints is the validated, normalized form consumed by Select.
type Constraints struct {
	MaxMinutes     int
	CurrentEnergy  int // 1-5
	Mode           string
	AvoidTags      []string
	PreferPriority string
}

// ConstraintInput carries constraint fields before validation.
// CurrentEnergy accepts numeric input or an enum word such as "low" or
// "extreme"; nil means absent.
type ConstraintInput struct {
	MaxMinutes     *int
	CurrentEnergy  any
	Mode           string
	AvoidTags      []string
	PreferPriority string
}

// ConstraintInputFromMap builds a ConstraintInput from a permissive dict,
// e.g. a decoded request body. Unknown keys are ignored.
func ConstraintInputFromMap(m map[string]any) ConstraintInput {
	var in ConstraintInput
	if m == nil {
		return in
	}
	if raw, ok := m["max_minutes"]; ok {
		if n, ok := parseMinutes(raw); ok {
			in.MaxMinutes = &n
		}
	}
	if raw, ok := m["current_energy"]; ok {
		in.CurrentEnergy = raw
	}
	if s, ok := m["mode"].(string); ok {
		in.Mode = s
	}
	if s, ok := m["prefer_priority"].(string); ok {
		in.PreferPriority = s
	}
	in.AvoidTags = stringSliceField(FieldMap(m), "avoid_tags")
	return in
}

// ValidateConstraints checks the two required numeric fields strictly and
// defaults everything else permissively. max_minutes must be present and
// positive; current_energy must be present and is normalized to [1,5].
func ValidateConstraints(in ConstraintInput) (Constraints, error) {
	if in.MaxMinutes == nil {
		return Constraints{}, &contract.SelectionError{
			Code:    contract.ErrInvalidMaxMinutes,
			Message: "max_minutes is required",
		}
	}
	if *in.MaxMinutes <= 0 {
		return Constraints{}, &contract.SelectionError{
			Code:    contract.ErrInvalidMaxMinutes,
			Message: fmt.Sprintf("max_minutes must be > 0, got %d", *in.MaxMinutes),
		}
	}

	if in.CurrentEnergy == nil {
		return Constraints{}, &contract.SelectionError{
			Code:    contract.ErrMissingEnergy,
			Message: "current_energy is required",
		}
	}
	energy, ok := ParseEnergy(in.CurrentEnergy)
	if !ok {
		return Constraints{}, &contract.SelectionError{
			Code:    contract.ErrMissingEnergy,
			Message: fmt.Sprintf("current_energy is not a number or energy word: %v", in.CurrentEnergy),
		}
	}

	tags := in.AvoidTags
	if tags == nil {
		tags = []string{}
	}

	return Constraints{
		MaxMinutes:     *in.MaxMinutes,
		CurrentEnergy:  domain.ClampInt(energy, minEnergy, maxEnergy),
		Mode:           in.Mode,
		AvoidTags:      tags,
		PreferPriority: in.PreferPriority,
	}, nil
}
