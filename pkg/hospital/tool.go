package hospital

import "github.com/smarthealth/connect/pkg/llm"

// ToolName is the function name declared to the completion backend.
const ToolName = "find_nearest_hospital"

// Spec declares the locator to the model.
func Spec() llm.ToolSpec {
	return llm.ToolSpec{
		Name: ToolName,
		Description: "Looks up hospitals near the user's location based on medical specialty " +
			"and hospital type (Government or Private). Returns a list of nearby hospitals " +
			"and their details, including price range and whether subsidized care is available.",
		Parameters: map[string]any{
			"specialty": map[string]any{
				"type":        "string",
				"description": "Medical specialty to search for, e.g. pulmonology or cardiology",
			},
			"type": map[string]any{
				"type":        "string",
				"description": "Hospital type: Government or Private",
			},
			"user_location": map[string]any{
				"type":        "object",
				"description": "User coordinates as {lat, lon}; may be omitted",
				"properties": map[string]any{
					"lat": map[string]any{"type": "number"},
					"lon": map[string]any{"type": "number"},
				},
			},
		},
		Required: []string{"specialty", "type"},
	}
}
