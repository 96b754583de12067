package selection

import "github.com/nataliatalam/raimon/internal/domain"

// Candidate is one of the closed set of shapes a task candidate may arrive
// in. Loaders produce RawTask or ScoredTask; FieldMap covers loosely typed
// input such as decoded JSON from legacy clients.
type Candidate interface {
	candidate()
}

// RawTask is a plain task record with no upstream score.
type RawTask struct {
	Task *domain.Task
}

func (RawTask) candidate() {}

// ScoredTask wraps a task with a score produced by an upstream scorer and
// any reason codes that scorer already attached. The selection core consumes
// the score; it never computes one.
type ScoredTask struct {
	Task        *domain.Task
	Score       float64
	ReasonCodes []string
}

func (ScoredTask) candidate() {}

// FieldMap is a dict-shaped candidate. Field lookups follow a fixed
// fallback order documented on the accessor functions in normalize.go.
type FieldMap map[string]any

func (FieldMap) candidate() {}

// scored is the uniform internal record every candidate is normalized into.
type scored struct {
	TaskID      string
	Source      Candidate
	Duration    int // minutes, clamped to [1, 1440]
	EnergyReq   int // clamped to [1, 5]
	Score       float64
	ReasonCodes []string
}
