package catalog

import "github.com/jonathan/career-compass/internal/types"

// CareerOptions lists every career a user can mark as interesting in the
// wizard. The list is intentionally broader than the recommendation catalog;
// interests without a catalog entry simply never surface as recommendations.
var CareerOptions = []string{
	// Technology
	"Data Scientist", "Frontend Developer", "Backend Developer", "Full Stack Developer",
	"DevOps Engineer", "UX/UI Designer", "Product Manager", "Data Analyst",
	"Software Engineer", "Machine Learning Engineer", "Cybersecurity Analyst",

	// Legal & Law
	"Corporate Lawyer", "Immigration Lawyer", "Litigation Attorney", "Legal Consultant",
	"Paralegal", "Legal Advisor", "Family Lawyer", "Criminal Defense Attorney",

	// Finance & Accounting
	"Chartered Accountant", "Investment Banker", "Financial Advisor", "Tax Consultant",
	"Auditor", "Financial Analyst", "Bookkeeper", "Risk Analyst",

	// Healthcare & Medicine
	"Physician", "Surgeon", "Nurse", "Physical Therapist", "Mental Health Counselor",
	"Dentist", "Pharmacist", "Medical Technician", "Healthcare Administrator",

	// Business & Management
	"Business Analyst", "Management Consultant", "Operations Manager", "Sales Manager",
	"Human Resources Manager", "Project Manager", "Marketing Manager", "Account Manager",

	// Education
	"College Professor", "School Principal", "Teacher", "Education Consultant",
	"Training Specialist", "Academic Advisor", "Curriculum Designer",

	// Creative & Media
	"Graphic Designer", "Content Creator", "Digital Marketing Specialist", "Architect",
	"Interior Designer", "Video Editor", "Photographer", "Social Media Manager",

	// Science & Engineering
	"Civil Engineer", "Mechanical Engineer", "Research Scientist", "Environmental Scientist",
	"Chemical Engineer", "Biomedical Engineer", "Lab Technician",

	// Other Professions
	"Real Estate Agent", "Chef", "Personal Trainer", "Event Planner",
	"Travel Agent", "Insurance Agent", "Consultant", "Entrepreneur",
}

// EnvironmentOptions are the work environment choices for wizard step 2
var EnvironmentOptions = []types.WizardOption{
	{ID: "startup", Label: "Startup", Description: "Fast-paced, innovative environment"},
	{ID: "corporate", Label: "Corporate", Description: "Structured, stable organization"},
	{ID: "freelance", Label: "Freelancing", Description: "Independent, flexible work"},
	{ID: "agency", Label: "Agency", Description: "Client-focused, diverse projects"},
}

// RoleFlavorOptions are the role style choices for wizard step 3
var RoleFlavorOptions = []types.WizardOption{
	{ID: "technical", Label: "Technical", Description: "Hands-on coding and development"},
	{ID: "creative", Label: "Creative", Description: "Design and visual problem-solving"},
	{ID: "leadership", Label: "Leadership", Description: "Managing teams and strategy"},
	{ID: "hybrid", Label: "Hybrid", Description: "Mix of technical and business"},
}

// LocationOptions are the location preference choices for wizard step 4
var LocationOptions = []types.WizardOption{
	{ID: "remote", Label: "Fully Remote", Description: "Work from anywhere"},
	{ID: "hybrid", Label: "Hybrid", Description: "Mix of office and remote"},
	{ID: "onsite", Label: "On-site", Description: "Traditional office setting"},
	{ID: "flexible", Label: "Flexible", Description: "Open to any arrangement"},
}

// ValidCareerOption reports whether the given career appears in CareerOptions
func ValidCareerOption(career string) bool {
	for _, c := range CareerOptions {
		if c == career {
			return true
		}
	}
	return false
}

// ValidOption reports whether the given option ID appears in the option list
func ValidOption(options []types.WizardOption, id string) bool {
	for _, opt := range options {
		if opt.ID == id {
			return true
		}
	}
	return false
}
