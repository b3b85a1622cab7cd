// Package observability provides formatted output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an ingested profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Summary != "" {
		summary := profile.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))
		sb.WriteString("\n")
	}

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), 3)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s (%s)\n", exp.Title, exp.Company, exp.Duration))
		}
		if len(profile.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-3))
		}
	}

	p.printBox("INGESTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommendation set with confidence scores.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommended %d careers:\n\n", len(recs)))

	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Title))
		sb.WriteString(fmt.Sprintf("    Confidence: %.0f%%\n", rec.Confidence*100))
		if len(rec.PrimarySkills) > 0 {
			skills := strings.Join(rec.PrimarySkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER RECOMMENDATIONS", sb.String())
}

// PrintInterviewFeedback outputs the scored feedback for a completed
// interview run.
func (p *Printer) PrintInterviewFeedback(feedback *types.InterviewFeedback) {
	if feedback == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:     %d/100\n", feedback.OverallScore))
	sb.WriteString(fmt.Sprintf("Total time:        %ds\n", feedback.TotalTime))
	sb.WriteString(fmt.Sprintf("Avg per question:  %ds\n", feedback.AvgTimePerQuestion))

	if len(feedback.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(feedback.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := feedback.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("INTERVIEW FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlanSummary outputs a compact view of a generated learning plan.
func (p *Printer) PrintPlanSummary(days []types.DayPlan) {
	if len(days) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d-day plan:\n\n", len(days)))

	for i, day := range days {
		sb.WriteString(fmt.Sprintf("Day %d  %s\n", day.Day, day.Theme))
		sb.WriteString(fmt.Sprintf("       %d tasks, %d min\n", len(day.Tasks), day.TotalMinutes))
		if i < len(days)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING PLAN", sb.String())
}
