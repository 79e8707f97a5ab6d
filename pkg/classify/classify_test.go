package classify

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

// almostEqual absorbs float64 rounding in confidence sums.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClassifyEmptyPrompt(t *testing.T) {
	for _, prompt := range []string{"", "   "} {
		cls := Classify(prompt)

		if cls.Archetype != wireframe.WebDesktop {
			t.Errorf("Classify(%q) archetype = %q, want web-desktop", prompt, cls.Archetype)
		}
		if cls.Fidelity != wireframe.LowFi {
			t.Errorf("Classify(%q) fidelity = %q, want low-fi", prompt, cls.Fidelity)
		}
		if cls.Confidence != 0.5 {
			t.Errorf("Classify(%q) confidence = %v, want 0.5", prompt, cls.Confidence)
		}
		if cls.SuggestedWidth != 1200 || cls.SuggestedHeight != 800 {
			t.Errorf("Classify(%q) size = %dx%d, want 1200x800",
				prompt, cls.SuggestedWidth, cls.SuggestedHeight)
		}

		want := []wireframe.ComponentType{
			wireframe.TypeHeader, wireframe.TypeNavigation,
			wireframe.TypeContent, wireframe.TypeFooter,
		}
		if diff := cmp.Diff(want, cls.Components); diff != "" {
			t.Errorf("Classify(%q) components mismatch (-want +got):\n%s", prompt, diff)
		}
		if cls.Requirements != (wireframe.RequirementFlags{}) {
			t.Errorf("Classify(%q) requirements = %+v, want all false", prompt, cls.Requirements)
		}
	}
}

func TestClassifyDashboardPrompt(t *testing.T) {
	cls := Classify("analytics dashboard with charts and a sidebar")

	if cls.Archetype != wireframe.Dashboard {
		t.Fatalf("archetype = %q, want dashboard", cls.Archetype)
	}
	if cls.SuggestedWidth != 1440 || cls.SuggestedHeight != 900 {
		t.Errorf("size = %dx%d, want 1440x900", cls.SuggestedWidth, cls.SuggestedHeight)
	}
	if !cls.HasComponent(wireframe.TypeSidebar) {
		t.Error("components should include sidebar")
	}
	if !cls.HasComponent(wireframe.TypeChart) {
		t.Error("components should include chart")
	}

	// 3 archetype hits (analytics, dashboard, charts) cap the archetype
	// boost; 3 component hits (navigation, sidebar, chart) add 0.15.
	if !almostEqual(cls.Confidence, 0.95) {
		t.Errorf("confidence = %v, want 0.95", cls.Confidence)
	}
}

func TestClassifyTieBreakOrder(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   wireframe.Archetype
	}{
		{"landing beats dashboard", "dashboard landing", wireframe.LandingPage},
		{"ecommerce beats blog", "shop blog", wireframe.Ecommerce},
		{"no hits falls back to web-desktop", "random gibberish xyzzy", wireframe.WebDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.prompt).Archetype; got != tt.want {
				t.Errorf("Classify(%q) archetype = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestClassifyFidelity(t *testing.T) {
	tests := []struct {
		prompt string
		want   wireframe.Fidelity
	}{
		{"simple login form", wireframe.LowFi},
		{"structured admin dashboard", wireframe.MidFi},
		{"detailed ecommerce product page", wireframe.HighFi},
		{"hand drawn mobile app", wireframe.Sketch},
		{"dashboard", wireframe.LowFi},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			if got := Classify(tt.prompt).Fidelity; got != tt.want {
				t.Errorf("Classify(%q) fidelity = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestClassifyRequirementFlags(t *testing.T) {
	cls := Classify("responsive dark mode login with search and cart")

	want := wireframe.RequirementFlags{
		Responsive: true,
		DarkMode:   true,
		Search:     true,
		UserAuth:   true,
		Ecommerce:  true,
	}
	if diff := cmp.Diff(want, cls.Requirements); diff != "" {
		t.Errorf("requirements mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifySuggestedSizes(t *testing.T) {
	tests := []struct {
		prompt        string
		archetype     wireframe.Archetype
		width, height int
	}{
		{"startup landing page", wireframe.LandingPage, 1200, 1200},
		{"admin dashboard", wireframe.Dashboard, 1440, 900},
		{"online store checkout", wireframe.Ecommerce, 1200, 1000},
		{"login form", wireframe.FormPage, 600, 800},
		{"mobile app", wireframe.MobileApp, 375, 812},
		{"blog", wireframe.Blog, 800, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			cls := Classify(tt.prompt)
			if cls.Archetype != tt.archetype {
				t.Fatalf("archetype = %q, want %q", cls.Archetype, tt.archetype)
			}
			if cls.SuggestedWidth != tt.width || cls.SuggestedHeight != tt.height {
				t.Errorf("size = %dx%d, want %dx%d",
					cls.SuggestedWidth, cls.SuggestedHeight, tt.width, tt.height)
			}
		})
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   float64
	}{
		{"empty prompt scores the base", "", 0.5},
		{"no hits at all scores the base", "random gibberish xyzzy", 0.5},
		{"single archetype hit", "dashboard", 0.6},
		{"both boosts capped", "dashboard analytics charts sidebar table list form content", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.prompt).Confidence
			if !almostEqual(got, tt.want) {
				t.Errorf("Classify(%q) confidence = %v, want %v", tt.prompt, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("confidence %v out of [0,1]", got)
			}
		})
	}
}

func TestClassifyImpliedComponentsDoNotRaiseConfidence(t *testing.T) {
	// "dashboard" implies header, sidebar, content, and chart but contains
	// no component keyword, so only the archetype hit moves the score.
	cls := Classify("dashboard")

	if len(cls.Components) == 0 {
		t.Fatal("implied components missing")
	}
	if !almostEqual(cls.Confidence, 0.6) {
		t.Errorf("confidence = %v, want 0.6 (0.5 base + one archetype hit)", cls.Confidence)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	prompt := "detailed ecommerce store with product cards and search"

	first := Classify(prompt)
	second := Classify(prompt)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated classification differs (-first +second):\n%s", diff)
	}
}
