package types

// CareerTemplate is a static catalog entry describing one career path.
// Templates are defined at process start and never mutated.
type CareerTemplate struct {
	Title         string   `json:"title"`
	WhyFit        string   `json:"why_fit"`
	Description   string   `json:"description"`
	PrimarySkills []string `json:"primary_skills"`
	Confidence    float64  `json:"confidence"`
	SalaryRange   string   `json:"salary_range"`
	GrowthOutlook string   `json:"growth_outlook"`
}

// Recommendation is a CareerTemplate surfaced to the user by the
// recommendation engine. Exactly three are produced per analysis run.
type Recommendation = CareerTemplate

// WizardOption describes one selectable choice in a wizard step
// (work environment, role flavor, or location preference).
type WizardOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
