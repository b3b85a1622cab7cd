package ingestion

import (
	"context"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// MaxFileSizeBytes is the upload size ceiling (10MB)
const MaxFileSizeBytes = 10 * 1024 * 1024

// allowedMIMETypes is the upload allow-list. Matches the formats the future
// backend parser is expected to support.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// ValidateFile checks an upload's metadata against the allow-list and size
// ceiling without consuming any processing delay. Validation failures abort
// the operation before any state is touched.
func ValidateFile(req types.UploadFileRequest) error {
	if !allowedMIMETypes[req.ContentType] {
		return &ErrInvalidFileType{ContentType: req.ContentType}
	}
	if req.SizeBytes > MaxFileSizeBytes {
		return &ErrFileTooLarge{SizeBytes: req.SizeBytes}
	}
	return nil
}

// FromFile validates an uploaded resume file and produces a mock profile.
// The file content is never inspected; the profile branches on the filename
// to keep the demo data plausible.
func (ing *Ingestor) FromFile(ctx context.Context, req types.UploadFileRequest) (*types.Profile, error) {
	if err := ValidateFile(req); err != nil {
		return nil, err
	}

	if err := simulateProcessing(ctx, ing.cfg.FileDelay); err != nil {
		return nil, err
	}

	if strings.Contains(strings.ToLower(req.Filename), "developer") {
		return developerProfile(), nil
	}
	return marketingProfile(), nil
}

func developerProfile() *types.Profile {
	return &types.Profile{
		RawText: "Experienced Frontend Developer with 5+ years in React, TypeScript, and modern web technologies. " +
			"Built scalable applications for enterprise clients. Strong background in UX design and agile development.",
		Skills: []string{"React", "TypeScript", "Node.js", "Python", "Git", "AWS", "GraphQL", "MongoDB"},
		Education: []types.Education{{
			Degree: "Bachelor of Science",
			Field:  "Computer Science",
			School: "University of Technology",
			Year:   "2018",
		}},
		Experience: []types.Experience{{
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp Inc.",
			Duration:    "2021 - Present",
			Description: "Led development of user-facing features and marketing campaigns.",
		}},
		Summary: "Senior developer with expertise in modern web technologies and user experience design.",
	}
}

func marketingProfile() *types.Profile {
	return &types.Profile{
		RawText: "Marketing professional with 3+ years experience in digital marketing, content strategy, and analytics. " +
			"Led campaigns that increased user engagement by 40%. Skilled in Google Analytics, social media marketing, and content creation.",
		Skills: []string{"Google Analytics", "Content Marketing", "Social Media", "SEO", "Email Marketing", "Adobe Creative Suite"},
		Education: []types.Education{{
			Degree: "Bachelor of Science",
			Field:  "Marketing",
			School: "University of Technology",
			Year:   "2018",
		}},
		Experience: []types.Experience{{
			Title:       "Digital Marketing Specialist",
			Company:     "Growth Agency",
			Duration:    "2021 - Present",
			Description: "Led development of user-facing features and marketing campaigns.",
		}},
		Summary: "Marketing professional focused on data-driven campaigns and user engagement.",
	}
}
