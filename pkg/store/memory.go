package store

import (
	"context"
	"sync"

	"github.com/framesketch/framesketch/pkg/errors"
	"github.com/framesketch/framesketch/pkg/wireframe"
)

// Memory keeps templates and records in process memory. It is the default
// backend for the CLI and for tests.
type Memory struct {
	mu        sync.RWMutex
	templates []Template
	records   []Record
}

// NewMemory creates a memory store seeded with the builtin templates.
func NewMemory() *Memory {
	return &Memory{templates: BuiltinTemplates()}
}

// Templates lists templates in seed order.
func (s *Memory) Templates(ctx context.Context) ([]Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Template, len(s.templates))
	copy(out, s.templates)
	return out, nil
}

// Template fetches one template by ID.
func (s *Memory) Template(ctx context.Context, id string) (Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, errors.New(errors.ErrCodeNotFound, "template %q not found", id)
}

// SaveRecord appends a generation record.
func (s *Memory) SaveRecord(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Stats aggregates saved records.
func (s *Memory) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalGenerations: len(s.records),
		ByArchetype:      make(map[wireframe.Archetype]int),
	}
	for _, rec := range s.records {
		if rec.Enhanced {
			stats.Enhanced++
		}
		stats.ByArchetype[rec.Archetype]++
	}
	return stats, nil
}

// Close does nothing for the memory store.
func (s *Memory) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*Memory)(nil)
