package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Success(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, 6, cat.Len())
}

func TestLoad_DefinitionOrder(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	titles := make([]string, 0, cat.Len())
	for _, tmpl := range cat.Templates() {
		titles = append(titles, tmpl.Title)
	}

	expected := []string{
		"Frontend Developer",
		"Data Scientist",
		"Product Manager",
		"UX/UI Designer",
		"DevOps Engineer",
		"Digital Marketing Manager",
	}
	assert.Equal(t, expected, titles)
}

func TestLookup_Found(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	tmpl, ok := cat.Lookup("Frontend Developer")
	require.True(t, ok)
	assert.Equal(t, "Frontend Developer", tmpl.Title)
	assert.Equal(t, 0.85, tmpl.Confidence)
	assert.NotEmpty(t, tmpl.WhyFit)
	assert.NotEmpty(t, tmpl.SalaryRange)
	assert.NotEmpty(t, tmpl.PrimarySkills)
}

func TestLookup_NotFound(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, ok := cat.Lookup("Blacksmith")
	assert.False(t, ok)
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	templates := cat.Templates()
	templates[0].Title = "Mutated"

	fresh := cat.Templates()
	assert.Equal(t, "Frontend Developer", fresh[0].Title)
}

func TestCareerOptions_Count(t *testing.T) {
	assert.Len(t, CareerOptions, 64)
}

func TestValidCareerOption(t *testing.T) {
	assert.True(t, ValidCareerOption("Frontend Developer"))
	assert.True(t, ValidCareerOption("Data Scientist"))
	assert.False(t, ValidCareerOption("Wizard"))
	assert.False(t, ValidCareerOption(""))
}

func TestWizardOptionLists(t *testing.T) {
	assert.Len(t, EnvironmentOptions, 4)
	assert.Len(t, RoleFlavorOptions, 4)
	assert.Len(t, LocationOptions, 4)

	assert.True(t, ValidOption(EnvironmentOptions, "startup"))
	assert.True(t, ValidOption(LocationOptions, "remote"))
	assert.False(t, ValidOption(EnvironmentOptions, "remote"))
	assert.False(t, ValidOption(RoleFlavorOptions, ""))
}
