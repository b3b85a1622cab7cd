package ingestion

import (
	"context"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// FromLinkedIn produces a mock profile for a LinkedIn URL. The URL is not
// fetched or validated beyond being non-empty.
func (ing *Ingestor) FromLinkedIn(ctx context.Context, url string) (*types.Profile, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &ErrEmptyInput{Field: "url"}
	}

	if err := simulateProcessing(ctx, ing.cfg.LinkedInDelay); err != nil {
		return nil, err
	}

	return &types.Profile{
		RawText: "Product Manager with 4+ years experience leading cross-functional teams to deliver innovative digital products. " +
			"Expertise in agile methodologies, user research, and data-driven decision making. " +
			"Successfully launched 3 major product features that increased user retention by 25%.",
		Skills: []string{"Product Management", "Agile", "User Research", "Analytics", "SQL", "Figma", "Jira", "A/B Testing"},
		Education: []types.Education{{
			Degree: "MBA",
			Field:  "Business Administration",
			School: "Business School",
			Year:   "2019",
		}},
		Experience: []types.Experience{{
			Title:       "Senior Product Manager",
			Company:     "InnovateCorp",
			Duration:    "2020 - Present",
			Description: "Leading product strategy and roadmap for core platform features.",
		}},
		Summary: "Experienced product manager with a track record of successful product launches and team leadership.",
	}, nil
}
