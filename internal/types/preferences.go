package types

// MaxInterestedCareers is the hard cap on careers a user can mark as interesting.
const MaxInterestedCareers = 3

// Preferences holds the answers collected by the alignment wizard.
// It is built incrementally across the five wizard steps and finalized
// (immutable) when the wizard completes.
type Preferences struct {
	InterestedCareers  []string `json:"interested_careers"`
	WorkEnvironment    string   `json:"work_environment"`
	RoleFlavor         string   `json:"role_flavor"`
	LocationPreference string   `json:"location_preference"`
	WeeklyCommitment   int      `json:"weekly_commitment"`
}
