package hospital

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPulmonologyGovernment(t *testing.T) {
	got := Find(Query{Specialty: "pulmonology", FacilityType: "government"})
	assert.Contains(t, got, "Govt. City Hospital")
	assert.Contains(t, got, "Dr. R.K. Clinic")
	assert.Contains(t, got, "Feature 1: Hospital Locator & Details")
}

func TestFindCardiologyAnyType(t *testing.T) {
	for _, typ := range []string{"government", "private", "", "clinic"} {
		got := Find(Query{Specialty: "cardiology", FacilityType: typ})
		assert.Contains(t, got, "Apollo Cardiac Unit", "type %q", typ)
		assert.Contains(t, got, "Feature 2: Appointment Booking", "type %q", typ)
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	lower := Find(Query{Specialty: "pulmonology", FacilityType: "government"})
	mixed := Find(Query{Specialty: "PulmonOLOGY", FacilityType: "Government"})
	upper := Find(Query{Specialty: "PULMONOLOGY", FacilityType: "GOVERNMENT"})
	assert.Equal(t, lower, mixed)
	assert.Equal(t, lower, upper)

	assert.Equal(t,
		Find(Query{Specialty: "cardiology"}),
		Find(Query{Specialty: "CARDIOLOGY"}),
	)
}

func TestFindFallback(t *testing.T) {
	cases := []Query{
		{Specialty: "dermatology", FacilityType: "private"},
		{Specialty: "pulmonology", FacilityType: "private"},
		{Specialty: "", FacilityType: ""},
		{Specialty: "unknown", FacilityType: "government"},
	}
	for _, q := range cases {
		got := Find(q)
		assert.True(t, strings.HasPrefix(got, "No specialized facilities found"), "query %+v got %q", q, got)
	}
}

func TestFindDeterministic(t *testing.T) {
	q := Query{Specialty: "pulmonology", FacilityType: "government", Location: Location{Lat: 40.7128, Lon: -74.0060}}
	first := Find(q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Find(q))
	}
}

func TestSpec(t *testing.T) {
	spec := Spec()
	require.Equal(t, ToolName, spec.Name)
	assert.Contains(t, spec.Parameters, "specialty")
	assert.Contains(t, spec.Parameters, "type")
	assert.Contains(t, spec.Parameters, "user_location")
	assert.ElementsMatch(t, []string{"specialty", "type"}, spec.Required)
}
