// Package classify turns a free-text prompt into a layout intent: an
// archetype, a component set, a fidelity style, requirement flags, and a
// confidence score.
//
// Classification is deliberately not statistical. It is deterministic
// substring matching against fixed trigger-phrase tables (see lexicon.yaml),
// so the same prompt always yields the same intent. Classify is a total
// function: every input, including the empty string, produces a result.
package classify

import (
	"strings"

	"github.com/framesketch/framesketch/pkg/wireframe"
)

// Confidence scoring weights. Confidence starts at the base, grows with
// archetype keyword hits and keyword-detected components, and is capped at
// 1.0. Implied components never raise the score; a prompt with no hits at
// all, including the empty string, scores exactly the base.
const (
	confidenceBase     = 0.5
	archetypeHitWeight = 0.1
	archetypeHitCap    = 0.3
	componentWeight    = 0.05
	componentCap       = 0.2
)

// Classify analyzes a prompt and returns the inferred layout intent.
// It never fails; an empty prompt classifies as web-desktop with confidence
// 0.5 and low-fi fidelity.
func Classify(prompt string) wireframe.Classification {
	lex := loadTables()
	p := strings.ToLower(prompt)

	archetype, hits := detectArchetype(lex, p)
	components, componentHits := detectComponents(lex, p, archetype)

	width, height := SuggestedSize(archetype)

	return wireframe.Classification{
		Archetype:       archetype,
		Components:      components,
		Fidelity:        detectFidelity(lex, p),
		Requirements:    detectRequirements(lex, p),
		SuggestedWidth:  width,
		SuggestedHeight: height,
		Confidence:      confidence(hits, componentHits),
	}
}

// detectArchetype scores every archetype's trigger phrases against the prompt
// and returns the winner together with its hit count. Ties resolve to the
// earlier entry in ArchetypePriority. A zero score across the board falls
// back to keyword probes (auth words imply a form, mobile words a mobile
// app), and finally to web-desktop.
func detectArchetype(lex *lexicon, prompt string) (wireframe.Archetype, int) {
	best := wireframe.WebDesktop
	bestScore := 0

	for _, a := range ArchetypePriority {
		score := countHits(lex.Archetypes[a], prompt)
		if score > bestScore {
			best = a
			bestScore = score
		}
	}
	if bestScore > 0 {
		return best, bestScore
	}

	for _, a := range []wireframe.Archetype{wireframe.FormPage, wireframe.MobileApp} {
		if containsAny(lex.Fallbacks[a], prompt) {
			return a, 0
		}
	}
	return wireframe.WebDesktop, 0
}

// detectComponents returns the union of explicit component keyword hits and
// the archetype's implied component set, ordered by the canonical component
// declaration order for determinism. The second return value counts only the
// keyword-detected types; it feeds the confidence boost, which implied
// components must not inflate.
func detectComponents(lex *lexicon, prompt string, archetype wireframe.Archetype) ([]wireframe.ComponentType, int) {
	found := make(map[wireframe.ComponentType]bool)

	hits := 0
	for t, phrases := range lex.Components {
		if containsAny(phrases, prompt) {
			found[t] = true
			hits++
		}
	}
	for _, t := range ImpliedComponents(archetype) {
		found[t] = true
	}

	components := make([]wireframe.ComponentType, 0, len(found))
	for _, t := range wireframe.ComponentTypes {
		if found[t] {
			components = append(components, t)
		}
	}
	return components, hits
}

// detectFidelity returns the first fidelity style with a phrase hit, probing
// in the fixed styleOrder. No hit defaults to low-fi.
func detectFidelity(lex *lexicon, prompt string) wireframe.Fidelity {
	for _, f := range styleOrder {
		if containsAny(lex.Styles[f], prompt) {
			return f
		}
	}
	return wireframe.LowFi
}

// detectRequirements runs the independent requirement probes.
func detectRequirements(lex *lexicon, prompt string) wireframe.RequirementFlags {
	probe := func(name string) bool {
		return containsAny(lex.Requirements[name], prompt)
	}
	return wireframe.RequirementFlags{
		Responsive:     probe("responsive"),
		DarkMode:       probe("dark_mode"),
		Accessibility:  probe("accessibility"),
		Animations:     probe("animations"),
		Search:         probe("search"),
		UserAuth:       probe("user_auth"),
		SocialFeatures: probe("social_features"),
		Ecommerce:      probe("ecommerce"),
	}
}

// confidence computes the bounded score. It is non-decreasing in both the
// archetype hit count and the keyword-detected component count.
func confidence(archetypeHits, componentHits int) float64 {
	score := confidenceBase
	score += min(archetypeHitCap, archetypeHitWeight*float64(archetypeHits))
	score += min(componentCap, componentWeight*float64(componentHits))
	return min(score, 1.0)
}

func countHits(phrases []string, prompt string) int {
	n := 0
	for _, phrase := range phrases {
		if strings.Contains(prompt, phrase) {
			n++
		}
	}
	return n
}

func containsAny(phrases []string, prompt string) bool {
	for _, phrase := range phrases {
		if strings.Contains(prompt, phrase) {
			return true
		}
	}
	return false
}
