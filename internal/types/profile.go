// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents a user's extracted professional background.
// It is created once per session by an ingestion path and is immutable afterward.
type Profile struct {
	RawText    string       `json:"raw_text"`
	Skills     []string     `json:"skills"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Summary    string       `json:"summary"`
}

// Education represents a single education entry on a profile
type Education struct {
	Degree string `json:"degree"`
	Field  string `json:"field"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// Experience represents a single work experience entry on a profile
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}
