// Package store persists wireframe templates and generation records.
//
// Templates are curated starting prompts exposed by the API and CLI.
// Records are a lightweight history of completed generations used for the
// stats endpoint; artifact bytes stay in the cache, not here.
package store

import (
	"context"
	"time"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

// Template is a curated prompt with sensible generation settings.
type Template struct {
	ID          string              `json:"id" bson:"_id"`
	Name        string              `json:"name" bson:"name"`
	Description string              `json:"description" bson:"description"`
	Prompt      string              `json:"prompt" bson:"prompt"`
	Archetype   wireframe.Archetype `json:"archetype" bson:"archetype"`
	Fidelity    wireframe.Fidelity  `json:"fidelity" bson:"fidelity"`
}

// Record summarizes one completed generation.
type Record struct {
	ID             string              `json:"id" bson:"_id"`
	Prompt         string              `json:"prompt" bson:"prompt"`
	Archetype      wireframe.Archetype `json:"archetype" bson:"archetype"`
	Fidelity       wireframe.Fidelity  `json:"fidelity" bson:"fidelity"`
	ComponentCount int                 `json:"component_count" bson:"component_count"`
	Enhanced       bool                `json:"enhanced" bson:"enhanced"`
	DurationMS     int64               `json:"duration_ms" bson:"duration_ms"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
}

// Stats aggregates the generation history.
type Stats struct {
	TotalGenerations int                         `json:"total_generations"`
	Enhanced         int                         `json:"enhanced"`
	ByArchetype      map[wireframe.Archetype]int `json:"by_archetype"`
}

// Store is the persistence interface. Implementations must be safe for
// concurrent use.
type Store interface {
	// Templates lists all templates in a stable order.
	Templates(ctx context.Context) ([]Template, error)

	// Template fetches one template by ID. Missing IDs yield a NOT_FOUND
	// coded error.
	Template(ctx context.Context, id string) (Template, error)

	// SaveRecord appends a generation record.
	SaveRecord(ctx context.Context, rec Record) error

	// Stats aggregates saved records.
	Stats(ctx context.Context) (Stats, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// BuiltinTemplates are the templates every backend starts with.
func BuiltinTemplates() []Template {
	return []Template{
		{
			ID:          "landing-hero",
			Name:        "Landing Page with Hero",
			Description: "Marketing page with hero section, feature blocks, and footer",
			Prompt:      "landing page with hero section, features, and footer",
			Archetype:   wireframe.LandingPage,
			Fidelity:    wireframe.LowFi,
		},
		{
			ID:          "dashboard-analytics",
			Name:        "Analytics Dashboard",
			Description: "Admin dashboard with sidebar navigation and chart grid",
			Prompt:      "analytics dashboard with sidebar, header, and four charts",
			Archetype:   wireframe.Dashboard,
			Fidelity:    wireframe.MidFi,
		},
		{
			ID:          "ecommerce-grid",
			Name:        "Product Grid",
			Description: "Online store with category navigation and product cards",
			Prompt:      "online store with header, category navigation, and product cards",
			Archetype:   wireframe.Ecommerce,
			Fidelity:    wireframe.LowFi,
		},
		{
			ID:          "mobile-app-tabs",
			Name:        "Mobile App with Tabs",
			Description: "Phone screen with status bar, content, and bottom navigation",
			Prompt:      "mobile app screen with header, content, navigation bar and bottom navigation tabs",
			Archetype:   wireframe.MobileApp,
			Fidelity:    wireframe.LowFi,
		},
	}
}
