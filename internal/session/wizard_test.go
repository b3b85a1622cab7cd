package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWizard_Defaults(t *testing.T) {
	w := NewWizard()

	assert.Equal(t, StepCareers, w.Step())
	assert.False(t, w.Completed())

	prefs := w.Preferences()
	assert.Empty(t, prefs.InterestedCareers)
	assert.Equal(t, 10, prefs.WeeklyCommitment)
}

func TestToggleCareer_AddAndRemove(t *testing.T) {
	w := NewWizard()

	require.NoError(t, w.ToggleCareer("Frontend Developer"))
	assert.Equal(t, []string{"Frontend Developer"}, w.Preferences().InterestedCareers)

	require.NoError(t, w.ToggleCareer("Frontend Developer"))
	assert.Empty(t, w.Preferences().InterestedCareers)
}

func TestToggleCareer_FourthIsNoOp(t *testing.T) {
	w := NewWizard()
	require.NoError(t, w.ToggleCareer("Frontend Developer"))
	require.NoError(t, w.ToggleCareer("Data Scientist"))
	require.NoError(t, w.ToggleCareer("Product Manager"))

	// Fourth selection: no error, no change
	require.NoError(t, w.ToggleCareer("UX/UI Designer"))
	assert.Equal(t,
		[]string{"Frontend Developer", "Data Scientist", "Product Manager"},
		w.Preferences().InterestedCareers)

	// Removing one of the three still works at the cap
	require.NoError(t, w.ToggleCareer("Data Scientist"))
	assert.Equal(t,
		[]string{"Frontend Developer", "Product Manager"},
		w.Preferences().InterestedCareers)
}

func TestToggleCareer_UnknownOption(t *testing.T) {
	w := NewWizard()
	err := w.ToggleCareer("Lion Tamer")
	require.Error(t, err)

	var optErr *ErrUnknownOption
	assert.ErrorAs(t, err, &optErr)
}

func TestSetters_RejectUnknownOptions(t *testing.T) {
	w := NewWizard()

	assert.Error(t, w.SetEnvironment("basement"))
	assert.Error(t, w.SetRoleFlavor("startup")) // valid environment, wrong list
	assert.Error(t, w.SetLocation("moon"))

	assert.NoError(t, w.SetEnvironment("startup"))
	assert.NoError(t, w.SetRoleFlavor("technical"))
	assert.NoError(t, w.SetLocation("remote"))
}

func TestSetHours_Range(t *testing.T) {
	w := NewWizard()

	var rangeErr *ErrOutOfRange
	assert.ErrorAs(t, w.SetHours(0), &rangeErr)
	assert.ErrorAs(t, w.SetHours(41), &rangeErr)

	require.NoError(t, w.SetHours(15))
	assert.Equal(t, 15, w.Preferences().WeeklyCommitment)
}

func TestCanProceed_PerStep(t *testing.T) {
	w := NewWizard()

	// Step 0 requires at least one career
	assert.False(t, w.CanProceed())
	require.NoError(t, w.ToggleCareer("Frontend Developer"))
	assert.True(t, w.CanProceed())

	// Step 1 requires an environment
	_, err := w.Next()
	require.NoError(t, err)
	assert.False(t, w.CanProceed())
	require.NoError(t, w.SetEnvironment("corporate"))
	assert.True(t, w.CanProceed())

	// Step 2 requires a role flavor
	_, err = w.Next()
	require.NoError(t, err)
	assert.False(t, w.CanProceed())
	require.NoError(t, w.SetRoleFlavor("creative"))

	// Step 3 requires a location
	_, err = w.Next()
	require.NoError(t, err)
	assert.False(t, w.CanProceed())
	require.NoError(t, w.SetLocation("hybrid"))

	// Step 4 always proceeds (the hours slider has a default)
	_, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, StepHours, w.Step())
	assert.True(t, w.CanProceed())
}

func TestNext_BlockedStepReturnsError(t *testing.T) {
	w := NewWizard()

	done, err := w.Next()
	assert.False(t, done)

	var proceedErr *ErrCannotProceed
	require.ErrorAs(t, err, &proceedErr)
	assert.Equal(t, 0, proceedErr.Step)
}

func TestNext_CompletesOnFinalStep(t *testing.T) {
	w := completedWizard(t)

	assert.True(t, w.Completed())
	prefs := w.Preferences()
	assert.Equal(t, []string{"Frontend Developer"}, prefs.InterestedCareers)
	assert.Equal(t, "startup", prefs.WorkEnvironment)
	assert.Equal(t, "technical", prefs.RoleFlavor)
	assert.Equal(t, "remote", prefs.LocationPreference)
	assert.Equal(t, 12, prefs.WeeklyCommitment)
}

func TestBack_ClampsAtFirstStep(t *testing.T) {
	w := NewWizard()

	w.Back()
	assert.Equal(t, StepCareers, w.Step())

	require.NoError(t, w.ToggleCareer("Frontend Developer"))
	_, err := w.Next()
	require.NoError(t, err)
	assert.Equal(t, StepEnvironment, w.Step())

	w.Back()
	assert.Equal(t, StepCareers, w.Step())
	w.Back()
	assert.Equal(t, StepCareers, w.Step())
}

// completedWizard walks a wizard through all five steps
func completedWizard(t *testing.T) *Wizard {
	t.Helper()
	w := NewWizard()
	require.NoError(t, w.ToggleCareer("Frontend Developer"))
	require.NoError(t, w.SetEnvironment("startup"))
	require.NoError(t, w.SetRoleFlavor("technical"))
	require.NoError(t, w.SetLocation("remote"))
	require.NoError(t, w.SetHours(12))

	for i := 0; i < WizardStepCount-1; i++ {
		done, err := w.Next()
		require.NoError(t, err)
		require.False(t, done)
	}
	done, err := w.Next()
	require.NoError(t, err)
	require.True(t, done)
	return w
}
