// Package cache provides pluggable result caching for the generation
// pipeline.
//
// # Overview
//
// Three concerns live here:
//
//   - [Cache]: the storage interface with memory, file, Redis, and null
//     implementations
//   - [Keyer]: deterministic cache key construction from generation inputs
//   - TTL policy: how long each artifact class stays fresh
//
// Keys hash their inputs with SHA-256, so prompts of any length and content
// produce fixed-size filesystem- and Redis-safe keys.
package cache

import (
	"context"
	"time"
)

// TTL policy per artifact class. Classifications are cheap to recompute but
// requested often; full results carry encoded images and dominate cache size.
const (
	TTLClassification = 24 * time.Hour
	TTLResult         = 12 * time.Hour
	TTLArtifact       = 12 * time.Hour
)

// Cache is the storage interface. Get reports a miss with hit=false and a
// nil error; errors are reserved for real storage failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ResultKeyOpts are the generation inputs that affect a cached result.
// Prompt text is passed separately.
type ResultKeyOpts struct {
	Archetype   string `json:"archetype"`
	Fidelity    string `json:"fidelity"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Annotations bool   `json:"annotations"`
	Enhanced    bool   `json:"enhanced"`
}

// ArtifactKeyOpts select one encoded artifact of a result.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer builds cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// ClassificationKey keys the prompt analysis stage.
	ClassificationKey(prompt string) string
	// ResultKey keys a complete generation result.
	ResultKey(prompt string, opts ResultKeyOpts) string
	// ArtifactKey keys one encoded artifact derived from a result.
	ArtifactKey(resultHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a stage prefix followed by a
// SHA-256 hash of the JSON-encoded inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

func (k *DefaultKeyer) ClassificationKey(prompt string) string {
	return hashKey("classify", prompt)
}

func (k *DefaultKeyer) ResultKey(prompt string, opts ResultKeyOpts) string {
	return hashKey("result", prompt, opts)
}

func (k *DefaultKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", resultHash, opts)
}
