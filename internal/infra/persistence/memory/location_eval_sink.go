package memory

import (
	"context"
	"sync"

	"catermatch/internal/domain/entity"
	"catermatch/internal/domain/repository"
)

// LocationEvalSink keeps evaluation records in memory. Used when the learned
// store runs without Postgres, and by tests.
type LocationEvalSink struct {
	mu    sync.Mutex
	evals []entity.LocationEval
}

var _ repository.LocationEvalRepository = (*LocationEvalSink)(nil)

// NewLocationEvalSink creates an empty sink.
func NewLocationEvalSink() *LocationEvalSink {
	return &LocationEvalSink{}
}

// RecordEval appends one evaluation record.
func (s *LocationEvalSink) RecordEval(_ context.Context, eval *entity.LocationEval) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evals = append(s.evals, *eval)

	return nil
}

// Evals returns a copy of everything recorded so far.
func (s *LocationEvalSink) Evals() []entity.LocationEval {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.LocationEval, len(s.evals))
	copy(out, s.evals)

	return out
}
