package hospital

import "strings"

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query describes a facility lookup near a location.
type Query struct {
	Specialty    string
	FacilityType string
	Location     Location
}

// Find looks up facilities matching the query against a static rule table.
// Matching is case-insensitive and the function is total: unknown
// specialty/type pairs get the generic advisory. It stands in for a real
// geospatial search service.
func Find(q Query) string {
	specialty := strings.ToLower(q.Specialty)
	facility := strings.ToLower(q.FacilityType)

	if specialty == "pulmonology" && facility == "government" {
		return "Found 2 hospitals near your mock location. **Govt. City Hospital** (4km, free care available) " +
			"and **Dr. R.K. Clinic** (6km, General Practitioner, low cost). " +
			"Please use Feature 1: Hospital Locator & Details for navigation and real-time availability."
	}
	if specialty == "cardiology" {
		return "Found 1 specialist center: **Apollo Cardiac Unit** (8km, Private, High Price Range). Use Feature 2: Appointment Booking to check available slots."
	}

	return "No specialized facilities found matching your criteria nearby. Consider consulting a General Practitioner."
}
