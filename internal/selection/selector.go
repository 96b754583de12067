package selection

import "github.com/nataliatalam/raimon/internal/contract"

// Select picks exactly one task from candidates under cons. It is pure and
// synchronous: no I/O, no shared state, safe for concurrent callers.
//
// It raises a SelectionError only when candidates is empty or when no
// candidate carries a usable id; every other malformed input degrades to a
// default. Given a non-empty candidate list with at least one usable id,
// Select always returns a task.
func Select(candidates []Candidate, cons Constraints) (*contract.SelectionResult, error) {
	if len(candidates) == 0 {
		return nil, &contract.SelectionError{
			Code:    contract.ErrNoCandidates,
			Message: "no task candidates provided",
		}
	}

	normalized := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		n, err := normalizeCandidate(c)
		if err != nil {
			// Fatal only when nothing survives; see below.
			continue
		}
		normalized = append(normalized, n)
	}

	if len(normalized) == 0 {
		// Degraded-but-total fallback: surface the first raw candidate's id
		// without scoring. Intentional policy, not a bug; see DESIGN.md.
		if id, ok := directTaskID(candidates[0]); ok {
			return &contract.SelectionResult{
				TaskID:      id,
				ReasonCodes: []string{contract.ReasonFallbackDirect},
				AltTaskIDs:  []string{},
			}, nil
		}
		return nil, &contract.SelectionError{
			Code:    contract.ErrNoUsableCandidates,
			Message: "no valid task candidates",
		}
	}

	fitting := make([]scored, 0, len(normalized))
	for _, n := range normalized {
		if n.Duration <= cons.MaxMinutes && n.EnergyReq <= cons.CurrentEnergy {
			fitting = append(fitting, n)
		}
	}

	// Working pool: the fitting subset when anything fits, otherwise the
	// full set so a selection is always made.
	pool := fitting
	usedFallback := false
	if len(pool) == 0 {
		pool = make([]scored, len(normalized))
		copy(pool, normalized)
		usedFallback = true
	}
	canonicalSort(pool)
	selected := pool[0]

	// Alternatives come from the whole normalized set, not the constrained
	// pool, ranked by the same key.
	all := make([]scored, len(normalized))
	copy(all, normalized)
	canonicalSort(all)

	return &contract.SelectionResult{
		TaskID:      selected.TaskID,
		ReasonCodes: composeReasons(selected, cons, usedFallback),
		AltTaskIDs:  composeAlternatives(all, selected.TaskID),
	}, nil
}
