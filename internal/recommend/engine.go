// Package recommend implements the career recommendation engine.
//
// Selection is deliberately not a pure function of its inputs: a coin flip
// admits non-matching careers during backfill and the final fill picks
// uniformly at random. The random source is injectable so tests can pin
// outcomes with a fixed seed.
package recommend

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// ResultCount is the number of recommendations produced per analysis run
const ResultCount = 3

// DefaultAnalysisDelay simulates the "analysis in progress" period
const DefaultAnalysisDelay = 3000 * time.Millisecond

// Engine produces ranked career recommendations from a profile and preferences
type Engine struct {
	catalog *catalog.Catalog
	delay   time.Duration

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// New creates an Engine. A nil rng gets a time-based seed.
func New(cat *catalog.Catalog, rng *rand.Rand, delay time.Duration) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{catalog: cat, rng: rng, delay: delay}
}

// Analyze waits out the simulated analysis delay and then runs Recommend.
// The delay stands in for a future backend scoring call; only context
// cancellation can fail it.
func (e *Engine) Analyze(ctx context.Context, profile *types.Profile, prefs *types.Preferences) ([]types.Recommendation, error) {
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return e.Recommend(profile, prefs), nil
}

// Recommend selects up to three careers for the user:
//
//  1. Careers the user explicitly marked as interesting, in insertion order,
//     as long as they exist in the catalog.
//  2. Remaining catalog entries in catalog order, admitted on a skill match
//     OR a coin flip (the match is a soft filter, not a hard one).
//  3. Uniform random picks from whatever remains, until three are selected
//     or the catalog is exhausted.
//
// Output never contains duplicate titles and never exceeds three entries.
func (e *Engine) Recommend(profile *types.Profile, prefs *types.Preferences) []types.Recommendation {
	e.mu.Lock()
	defer e.mu.Unlock()

	selected := make([]types.Recommendation, 0, ResultCount)
	picked := make(map[string]bool)

	// 1. Explicit interests first, preserving preference order
	for _, title := range prefs.InterestedCareers {
		if tmpl, ok := e.catalog.Lookup(title); ok && !picked[tmpl.Title] {
			selected = append(selected, tmpl)
			picked[tmpl.Title] = true
		}
	}

	// 2. Backfill from the catalog in order; skill match is a soft filter
	remaining := make([]types.Recommendation, 0, e.catalog.Len())
	for _, tmpl := range e.catalog.Templates() {
		if !picked[tmpl.Title] {
			remaining = append(remaining, tmpl)
		}
	}

	for _, tmpl := range remaining {
		if len(selected) >= ResultCount {
			break
		}
		if SkillsMatch(tmpl.PrimarySkills, profile.Skills) || e.rng.Float64() > 0.5 {
			selected = append(selected, tmpl)
			picked[tmpl.Title] = true
		}
	}

	// 3. Random fill from whatever the coin flips rejected
	for len(selected) < ResultCount {
		candidates := make([]types.Recommendation, 0, len(remaining))
		for _, tmpl := range remaining {
			if !picked[tmpl.Title] {
				candidates = append(candidates, tmpl)
			}
		}
		if len(candidates) == 0 {
			break
		}
		pick := candidates[e.rng.Intn(len(candidates))]
		selected = append(selected, pick)
		picked[pick.Title] = true
	}

	if len(selected) > ResultCount {
		selected = selected[:ResultCount]
	}
	return selected
}

// SkillsMatch reports whether any template skill case-insensitively
// substring-matches (in either direction) any of the user's skills.
func SkillsMatch(templateSkills, userSkills []string) bool {
	for _, ts := range templateSkills {
		for _, us := range userSkills {
			if substringMatch(ts, us) {
				return true
			}
		}
	}
	return false
}

func substringMatch(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
