package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollegesByType(t *testing.T) {
	tests := []struct {
		filter string
		want   int
	}{
		{"iits", 23},
		{"nits", 15},
		{"aiims", 12},
		{"private", 6},
		{"iims", 5},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Len(t, CollegesByType(tt.filter), tt.want)
		})
	}
}

func TestCollegesByType_UnknownFallsBackToAll(t *testing.T) {
	// 23 IITs + 15 NITs + 5 IIITs + 12 AIIMS + 6 private + 5 IIMs
	all := CollegesByType("all")
	assert.Len(t, all, 66)

	assert.Len(t, CollegesByType(""), 66)
	assert.Len(t, CollegesByType("bogus"), 66)

	// The combined listing is the only place IIITs appear.
	found := false
	for _, c := range all {
		if c.Name == "IIIT Hyderabad" {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestCareerCatalogConsistency(t *testing.T) {
	require.Len(t, CareerNames, 10)
	require.Len(t, CareerPaths, 10)

	for _, name := range CareerNames {
		path, ok := CareerPaths[name]
		require.True(t, ok, "career %q has no path entry", name)
		assert.NotEmpty(t, path.Description, "career %q", name)
		assert.NotEmpty(t, path.SalaryRange, "career %q", name)
		assert.NotEmpty(t, path.SkillsRequired, "career %q", name)
	}
}

func TestSkillsCatalog(t *testing.T) {
	require.Len(t, Skills, 15)
	for name, skill := range Skills {
		assert.Positive(t, skill.Demand, "skill %q", name)
		assert.Positive(t, skill.SalaryMin, "skill %q", name)
		assert.GreaterOrEqual(t, skill.SalaryMax, skill.SalaryMin, "skill %q", name)
	}
}

func TestScholarships_StampsLastUpdated(t *testing.T) {
	now := time.Date(2025, time.March, 7, 14, 30, 5, 0, time.UTC)

	listings := Scholarships(now)
	require.Len(t, listings, 5)
	for _, s := range listings {
		assert.Equal(t, "07/03/2025, 02:30:05 PM", s.LastUpdated)
	}

	// Callers get copies; the backing data keeps no stamp.
	listings[0].Name = "mutated"
	again := Scholarships(now)
	assert.NotEqual(t, "mutated", again[0].Name)
}
