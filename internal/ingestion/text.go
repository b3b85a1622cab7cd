package ingestion

import (
	"context"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// summaryMaxChars caps the auto-generated summary taken from pasted text
const summaryMaxChars = 150

// commonSkills is the fixed keyword allow-list scanned against pasted text
var commonSkills = []string{
	"JavaScript", "Python", "React", "Node.js", "SQL", "Git", "AWS", "Docker",
	"Marketing", "Analytics", "SEO", "Content Writing", "Project Management",
	"Leadership", "Communication", "Problem Solving", "Team Work",
}

// defaultSkills is used when no keyword matches the pasted text
var defaultSkills = []string{"Communication", "Problem Solving", "Team Work"}

// ExtractSkills scans text case-insensitively against the skill keyword
// allow-list, returning matches in allow-list order. Falls back to a default
// skill set if nothing matches.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	var extracted []string
	for _, skill := range commonSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			extracted = append(extracted, skill)
		}
	}

	if len(extracted) == 0 {
		out := make([]string, len(defaultSkills))
		copy(out, defaultSkills)
		return out
	}
	return extracted
}

// Summarize truncates pasted text into a short profile summary
func Summarize(text string) string {
	if len(text) > summaryMaxChars {
		return text[:summaryMaxChars] + "..."
	}
	return text
}

// FromText produces a profile from pasted free text. Skills are extracted
// by keyword scan; education and experience are placeholder records.
func (ing *Ingestor) FromText(ctx context.Context, text string) (*types.Profile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ErrEmptyInput{Field: "text"}
	}

	if err := simulateProcessing(ctx, ing.cfg.TextDelay); err != nil {
		return nil, err
	}

	return &types.Profile{
		RawText: text,
		Skills:  ExtractSkills(text),
		Education: []types.Education{{
			Degree: "Degree",
			Field:  "Field of Study",
			School: "University",
			Year:   "2020",
		}},
		Experience: []types.Experience{{
			Title:       "Professional",
			Company:     "Company",
			Duration:    "2020 - Present",
			Description: "Professional experience and achievements.",
		}},
		Summary: Summarize(text),
	}, nil
}
